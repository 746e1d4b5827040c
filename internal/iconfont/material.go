package iconfont

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"unicode"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/image/draw"
)

const (
	// MaterialCollectionName is the name of the Material Design icon collection.
	MaterialCollectionName = "material"

	// DefaultMaterialSize is the edge length, in pixels, Material glyphs are rasterized at.
	DefaultMaterialSize = 96
)

// Category prefixes used by the icons package identifiers.
var materialCategories = []string{
	"Action", "Alert", "AV", "Communication", "Content", "Device", "Editor",
	"File", "Hardware", "Image", "Maps", "Navigation", "Notification",
	"Places", "Social", "Toggle",
}

type materialKey struct {
	name string
	size int
	fg   color.NRGBA
}

// MaterialCollection rasterizes Material Design IconVG glyphs.
type MaterialCollection struct {
	glyphIndex
	data map[string][]byte

	size       int
	foreground func() color.Color

	mu    sync.Mutex
	cache map[materialKey]fyne.Resource
}

// MaterialOption configures a MaterialCollection.
type MaterialOption func(*MaterialCollection)

// WithMaterialSize sets the rasterization size.
func WithMaterialSize(size int) MaterialOption {
	return func(c *MaterialCollection) {
		if size > 0 {
			c.size = size
		}
	}
}

// WithForeground sets the function that supplies the glyph colour.
func WithForeground(fg func() color.Color) MaterialOption {
	return func(c *MaterialCollection) {
		if fg != nil {
			c.foreground = fg
		}
	}
}

// NewMaterialCollection creates the Material Design collection. By default
// glyphs are drawn in the theme foreground colour.
func NewMaterialCollection(opts ...MaterialOption) *MaterialCollection {
	glyphs := make([]Glyph, 0, len(materialIcons))
	data := make(map[string][]byte, len(materialIcons))
	for _, icon := range materialIcons {
		name := materialName(icon.ident)
		glyphs = append(glyphs, Glyph{Name: name, Ident: icon.ident})
		data[name] = icon.data
	}

	c := &MaterialCollection{
		glyphIndex: newGlyphIndex(glyphs),
		data:       data,
		size:       DefaultMaterialSize,
		foreground: func() color.Color { return theme.Color(theme.ColorNameForeground) },
		cache:      make(map[materialKey]fyne.Resource),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *MaterialCollection) Name() string { return MaterialCollectionName }

func (c *MaterialCollection) Imports() []string {
	return []string{
		"image",
		"image/draw",
		"fyne.io/fyne/v2/canvas",
		"golang.org/x/exp/shiny/iconvg",
		"golang.org/x/exp/shiny/materialdesign/icons",
	}
}

// %[1]s is the variable name, %[2]s the icons identifier, %[3]d the edge size.
const materialCode = `%[1]sImage := image.NewRGBA(image.Rect(0, 0, %[3]d, %[3]d))
var %[1]sRaster iconvg.Rasterizer
%[1]sRaster.SetDstImage(%[1]sImage, %[1]sImage.Bounds(), draw.Src)
if err := iconvg.Decode(&%[1]sRaster, icons.%[2]s, nil); err != nil {
	panic(err)
}
%[1]s := canvas.NewImageFromImage(%[1]sImage)
`

// Code rasterizes the IconVG data of g and assigns a *canvas.Image to name.
func (c *MaterialCollection) Code(g Glyph, name string) string {
	return fmt.Sprintf(materialCode, name, g.Ident, c.size)
}

// Resource rasterizes the glyph to a PNG resource. Results are cached per colour.
func (c *MaterialCollection) Resource(name string) (fyne.Resource, error) {
	data, ok := c.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownGlyph, name, MaterialCollectionName)
	}

	key := materialKey{
		name: name,
		size: c.size,
		fg:   color.NRGBAModel.Convert(c.foreground()).(color.NRGBA),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.cache[key]; ok {
		return res, nil
	}

	img, err := Rasterize(data, c.size, key.fg)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", name, err)
	}

	res := fyne.NewStaticResource(MaterialCollectionName+"-"+name+".png", buf.Bytes())
	c.cache[key] = res
	return res, nil
}

// Rasterize draws IconVG data into a size×size image using fg for every palette entry.
func Rasterize(data []byte, size int, fg color.Color) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))

	var pal iconvg.Palette
	rgba := color.RGBAModel.Convert(fg).(color.RGBA)
	for i := range pal {
		pal[i] = rgba
	}

	var z iconvg.Rasterizer
	z.SetDstImage(dst, dst.Bounds(), draw.Src)
	if err := iconvg.Decode(&z, data, &iconvg.DecodeOptions{Palette: &pal}); err != nil {
		return nil, err
	}
	return dst, nil
}

// materialName turns an icons identifier into a glyph name:
// ContentContentCopy becomes content_copy.
func materialName(ident string) string {
	rest := ident
	for _, category := range materialCategories {
		if len(ident) > len(category) && strings.HasPrefix(ident, category) &&
			unicode.IsUpper(rune(ident[len(category)])) {
			rest = ident[len(category):]
			break
		}
	}
	return snakeCase(rest)
}

func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
