package website

import (
	"fmt"
	"sort"
	"strings"
)

// Palette defaults; primary and secondary are overridden from SiteConfig.Colors.
var Palette = map[string]string{
	"primary":     "#616161",
	"secondary":   "#545454",
	"bg":          "#FFFFFF",
	"bgLight":     "#F5F5F5",
	"bgDark":      "#2B2B2B",
	"bgHighlight": "#EDE7F6",
	"text":        "#1C1E21",
	"textMuted":   "#4B4F56",
	"textInverse": "#FFFFFF",
	"border":      "#E0E0E0",
}

// Typography uses the system font stack
var FontFamily = `system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif`
var FontMono = `'SF Mono', SFMono-Regular, ui-monospace, 'DejaVu Sans Mono', Menlo, Consolas, monospace`

// StyleOption customizes the generated CSS
type StyleOption func(*styleConfig)

type styleConfig struct {
	customColors map[string]string
	includeReset bool
}

// WithColors overrides palette entries with the site's theme colours.
// Empty values keep the defaults.
func WithColors(c Colors) StyleOption {
	return func(cfg *styleConfig) {
		if c.PrimaryColor != "" {
			cfg.customColors["primary"] = c.PrimaryColor
		}
		if c.SecondaryColor != "" {
			cfg.customColors["secondary"] = c.SecondaryColor
		}
	}
}

// WithReset includes a CSS reset
func WithReset(include bool) StyleOption {
	return func(cfg *styleConfig) {
		cfg.includeReset = include
	}
}

// RenderStyles generates the site CSS. Output is deterministic for equal options.
func RenderStyles(opts ...StyleOption) string {
	cfg := &styleConfig{
		customColors: make(map[string]string),
		includeReset: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	colors := make(map[string]string, len(Palette))
	for k, v := range Palette {
		colors[k] = v
	}
	for k, v := range cfg.customColors {
		colors[k] = v
	}

	var sb strings.Builder
	if cfg.includeReset {
		sb.WriteString(cssReset())
	}
	sb.WriteString(cssVariables(colors))
	sb.WriteString(cssBase())
	sb.WriteString(cssHeader())
	sb.WriteString(cssSplash())
	sb.WriteString(cssButtons())
	sb.WriteString(cssContainers())
	sb.WriteString(cssGrid())
	sb.WriteString(cssShowcase())
	sb.WriteString(cssFooter())
	sb.WriteString(cssResponsive())

	return sb.String()
}

func cssReset() string {
	return `
*,*::before,*::after{box-sizing:border-box;margin:0;padding:0}
html{-webkit-text-size-adjust:100%;scroll-behavior:smooth}
body{line-height:1.6;-webkit-font-smoothing:antialiased}
img,svg{display:block;max-width:100%}
a{color:inherit}
`
}

func cssVariables(colors map[string]string) string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]string, 0, len(names))
	for _, name := range names {
		vars = append(vars, fmt.Sprintf("--color-%s:%s", name, colors[name]))
	}
	return fmt.Sprintf(":root{%s;--font-sans:%s;--font-mono:%s}\n", strings.Join(vars, ";"), FontFamily, FontMono)
}

func cssBase() string {
	return `
body{font-family:var(--font-sans);background:var(--color-bg);color:var(--color-text)}
a{color:var(--color-primary)}
code{font-family:var(--font-mono);font-size:0.9em}
.wrapper{max-width:1100px;margin:0 auto;padding:0 20px}
`
}

func cssHeader() string {
	return `
.fixedHeaderContainer{background:var(--color-primary);color:var(--color-textInverse);position:fixed;top:0;left:0;right:0;z-index:100;min-height:50px}
.headerWrapper{display:flex;align-items:center;justify-content:space-between;padding:8px 20px}
.headerTitleWithLogo{display:flex;align-items:center;gap:10px;font-weight:600;color:inherit;text-decoration:none}
.headerTitleWithLogo img{height:32px}
.nav-site{display:flex;gap:4px;list-style:none;align-items:center}
.nav-site a{color:var(--color-textInverse);padding:6px 10px;text-decoration:none}
.navSearchWrapper input{padding:4px 8px;border-radius:4px;border:none}
`
}

func cssSplash() string {
	return `
.homeContainer{padding-top:50px;text-align:center}
.homeSplashFade{padding:4rem 0}
.projectTitle{font-size:3rem;color:var(--color-primary);margin-bottom:1rem}
.projectTitle small{display:block;font-size:1.25rem;font-weight:400;color:var(--color-textMuted)}
.promoSection{display:flex;justify-content:center}
.promoRow{display:flex;flex-wrap:wrap;gap:10px;justify-content:center}
`
}

func cssButtons() string {
	return `
.button{display:inline-block;border:1px solid var(--color-primary);border-radius:3px;color:var(--color-primary);padding:10px 16px;text-decoration:none;text-transform:uppercase;font-size:14px}
.button:hover{background:var(--color-primary);color:var(--color-textInverse)}
.button--primary{background:var(--color-primary);color:var(--color-textInverse)}
.button--primary:hover{background:var(--color-secondary)}
`
}

func cssContainers() string {
	return `
.container{padding:0}
.paddingTop{padding-top:3rem}
.paddingBottom{padding-bottom:3rem}
.lightBackground{background:var(--color-bgLight)}
.darkBackground{background:var(--color-bgDark);color:var(--color-textInverse)}
.highlightBackground{background:var(--color-bgHighlight)}
`
}

func cssGrid() string {
	return `
.gridBlock{display:flex;flex-direction:column;gap:2rem}
.blockElement{display:flex;flex-direction:column;gap:1rem;flex:1}
.alignLeft{text-align:left}.alignCenter{text-align:center}.alignRight{text-align:right}
.imageAlignTop .blockImage,.imageAlignBottom .blockImage{margin:0 auto;max-width:80px}
.imageAlignLeft,.imageAlignRight{align-items:center}
.blockImage img{width:100%}
.blockContent h2{font-size:1.25rem;margin-bottom:0.5rem}
.blockContent p{color:var(--color-textMuted)}
`
}

func cssShowcase() string {
	return `
.productShowcaseSection{text-align:center;padding:3rem 0}
.showcase{display:flex;flex-wrap:wrap;gap:1.5rem;justify-content:center;margin-top:1.5rem}
.showcase img{height:64px}
`
}

func cssFooter() string {
	return `
.nav-footer{background:var(--color-bgDark);color:var(--color-textInverse);padding:2rem 0}
.nav-footer a{color:var(--color-textInverse);margin:0 8px}
.footerSection{display:flex;flex-wrap:wrap;gap:1rem;justify-content:center;align-items:center}
.copyright{text-align:center;margin-top:1rem;font-size:0.875rem;opacity:0.8}
`
}

func cssResponsive() string {
	return `
@media(min-width:736px){
.gridBlock{flex-direction:row;flex-wrap:wrap}
.twoByGridBlock{flex:0 0 calc(50% - 1rem)}
.threeByGridBlock{flex:0 0 calc(33.333% - 1.34rem)}
.fourByGridBlock{flex:0 0 calc(25% - 1.5rem)}
.imageAlignLeft,.imageAlignRight{flex-direction:row}
.imageAlignLeft .blockImage,.imageAlignRight .blockImage{flex:0 0 45%}
}
`
}
