package page

const baseCSS = `*,*::before,*::after{box-sizing:border-box}
html,body{margin:0;height:100%;color:#fff;font-family:"Manrope",system-ui,sans-serif}
.hero{position:relative;width:100%;min-height:100vh;overflow:hidden;display:flex;flex-direction:column;align-items:center}
.register{display:inline-flex;align-items:center;justify-content:center;padding:12px 48px;border-radius:40px;border:1px solid rgba(255,255,255,.6);background:#CE921B;color:#fff;font-weight:600;font-size:16px;line-height:20px;text-decoration:none;transition:transform .3s}
.register:hover{transform:scale(1.02)}
.register:active{transform:scale(.98)}
.timer{display:flex;justify-content:center;gap:24px}
.unit{display:flex;flex-direction:column;align-items:center}
.dial{position:relative;display:flex;flex-direction:column;align-items:center;justify-content:center;width:144px;height:144px}
.ring{position:absolute;inset:0;width:100%;height:100%;transform:rotate(-90deg);overflow:visible}
.ring .track{stroke:rgba(255,255,255,.1)}
.ring .progress{stroke:#CE921B;transition:stroke-dashoffset 1s linear}
.value{font-family:"Inter",system-ui,sans-serif;font-size:clamp(24px,4vw,36px);font-weight:500;line-height:1;font-variant-numeric:tabular-nums;text-shadow:0 4px 4px rgba(0,0,0,.4)}
.label{margin-top:4px;font-size:12px;font-weight:500;text-shadow:0 4px 4px rgba(0,0,0,.4)}
.expired-note{letter-spacing:.1em;text-transform:uppercase}
@media (max-width:768px){.timer{gap:8px}.dial{width:96px;height:96px}}
`

const cinematicCSS = `body.variant-cinematic{background:#000}
.variant-cinematic .ambience{position:absolute;inset:0;pointer-events:none;background:radial-gradient(circle at 50% 50%,rgba(255,255,255,.03) 0%,transparent 70%)}
.variant-cinematic .video-frame{position:absolute;top:35%;left:50%;transform:translate(-50%,-50%);width:100%;max-width:850px;display:flex;justify-content:center;z-index:10}
.variant-cinematic .video{width:100%;height:auto;object-fit:contain;opacity:.7;mix-blend-mode:screen;pointer-events:none;filter:contrast(1.2) brightness(1.2)}
.variant-cinematic .video-glow{position:absolute;inset:0;z-index:-1;background:rgba(255,255,255,.1);border-radius:50%;filter:blur(100px);opacity:.4}
.variant-cinematic .headline{position:absolute;top:12%;left:50%;transform:translateX(-50%);width:100%;display:flex;align-items:center;justify-content:center;gap:32px;z-index:20}
.variant-cinematic h1{margin:0;font-family:"Inter",system-ui,sans-serif;font-size:clamp(32px,8vw,48px);font-weight:500;line-height:150%;letter-spacing:-.528px;text-transform:uppercase;white-space:nowrap;text-shadow:0 4px 12px rgba(0,0,0,.6)}
.variant-cinematic .rule{height:1px;width:96px;background:rgba(255,255,255,.4)}
.variant-cinematic .rule-right{background:rgba(255,255,255,.2)}
.variant-cinematic .panel{margin-top:auto;margin-bottom:64px;width:100%;max-width:64rem;padding:48px;display:flex;flex-direction:column;align-items:center;gap:32px;text-align:center;background:rgba(255,255,255,.04);backdrop-filter:blur(40px);border:1px solid rgba(255,255,255,.2);border-radius:3rem;box-shadow:0 20px 50px rgba(0,0,0,.5);z-index:30}
.variant-cinematic .tagline{margin:0;color:#E5E5E5;font-size:14px;line-height:160%;letter-spacing:.1em}
.variant-cinematic .organizer{margin:0;font-size:10px;letter-spacing:.4em;text-transform:uppercase;opacity:.4}
`

const gradientCSS = `body.variant-gradient{background:#02091A}
.variant-gradient .video-cover{position:absolute;inset:0;width:100%;height:100%;object-fit:cover;z-index:0}
.variant-gradient .overlay{position:absolute;inset:0;background:rgba(0,0,0,.2);z-index:1}
.variant-gradient .content{position:relative;z-index:10;margin-top:450px;display:flex;flex-direction:column;align-items:center;gap:24px;text-align:center}
.variant-gradient .tagline{margin:0;font-size:16px;font-weight:500;line-height:150%;letter-spacing:-.176px;white-space:nowrap;text-shadow:0 4px 4px rgba(0,0,0,.4)}
.variant-gradient .register{padding:12px 24px;border:1px solid #fff;font-weight:500;letter-spacing:.02em;backdrop-filter:blur(21px)}
.variant-gradient .organizer{margin:0;font-size:16px;font-weight:500;text-shadow:0 4px 4px rgba(0,0,0,.4)}
.variant-gradient .organizer span{margin-left:6px}
.variant-gradient .glow{position:absolute;top:50%;left:50%;transform:translate(-50%,-50%);width:600px;height:600px;border-radius:50%;background:rgba(206,146,27,.05);filter:blur(120px);pointer-events:none;z-index:2}
`
