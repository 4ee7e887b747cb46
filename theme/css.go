package theme

import (
	"strings"
	"text/template"
)

var cssTemplate = template.Must(template.New("panel").Funcs(template.FuncMap{
	"css": CSSColor,
	"dim": Dim,
}).Parse(`
window.action-center {
    background-color: {{css .Background}};
}

.card {
    background-color: {{css .Surface}};
    border-radius: 18px;
    padding: 12px;
}

.section-title {
    color: {{css .OnSurface}};
    margin: 0 8px;
}

.caption {
    color: {{dim .OnSurface 0.7 | css}};
    font-size: 11px;
}

.toggle-title {
    color: {{css .OnSurface}};
}

button.toggle {
    min-width: 40px;
    min-height: 40px;
    border-radius: 20px;
    background: {{css .Surface}};
    color: {{css .OnSurface}};
    border: 1px solid {{dim .OnSurface 0.2 | css}};
}

button.toggle.active {
    background: {{css .Primary}};
    color: {{css .OnPrimary}};
}

button.shortcut {
    min-width: 36px;
    min-height: 36px;
    border-radius: 18px;
    background: {{css .Surface}};
    color: {{css .OnSurface}};
}

.album-art {
    background-color: rgba(50, 50, 50, 1);
    border-radius: 8px;
    padding: 24px 0;
    color: {{css .OnSurface}};
}

.media-title {
    color: {{css .OnSurface}};
}

.slider-icon {
    color: {{css .Background}};
}

.slider-row-icon {
    color: {{css .OnSurface}};
}
`))

// CSS renders the panel stylesheet for c.
func (c Colors) CSS() string {
	var b strings.Builder
	if err := cssTemplate.Execute(&b, c); err != nil {
		panic(err)
	}
	return b.String()
}
