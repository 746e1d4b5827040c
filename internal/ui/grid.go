package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	// Keeps a full row narrower than the viewport so tiles do not wrap early.
	gridScrollMargin = 30
	iconFraction     = 0.8
	minTileSize      = 24
)

// tileSize returns the square tile and icon edge for a grid of the given width.
func tileSize(width float32, columns int) (tile, icon float32) {
	if columns < 1 {
		columns = 1
	}
	tile = float32(math.Floor(float64((width - gridScrollMargin) / float32(columns))))
	if tile < minTileSize {
		tile = minTileSize
	}
	icon = float32(math.Floor(float64(tile * iconFraction)))
	return tile, icon
}

// tileSizer holds the tile geometry shared by every tile of the grid.
type tileSizer struct {
	columns int
	width   float32
	tile    float32
	icon    float32
}

func newTileSizer(columns int) *tileSizer {
	s := &tileSizer{columns: columns}
	s.tile, s.icon = tileSize(0, columns)
	return s
}

// resize recomputes the geometry and reports whether it changed.
func (s *tileSizer) resize(width float32) bool {
	s.width = width
	return s.recompute()
}

// setColumns changes the column count and reports whether the geometry changed.
func (s *tileSizer) setColumns(columns int) bool {
	s.columns = columns
	return s.recompute()
}

func (s *tileSizer) recompute() bool {
	tile, icon := tileSize(s.width, s.columns)
	changed := tile != s.tile
	s.tile, s.icon = tile, icon
	return changed
}

// gridLayout stretches the grid over its container and refreshes it when the
// tile geometry changes with the width.
type gridLayout struct {
	sizer   *tileSizer
	changed func()
}

func (l *gridLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Resize(size)
		o.Move(fyne.NewPos(0, 0))
	}
	if l.sizer.resize(size.Width) && l.changed != nil {
		l.changed()
	}
}

func (l *gridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSquareSize(l.sizer.tile)
}

// iconGrid is a GridWrap over a string list binding that also reacts to Return,
// which GridWrap itself ignores.
type iconGrid struct {
	widget.GridWrap

	onReturn func()
}

func newIconGrid(data binding.StringList, create func() fyne.CanvasObject,
	update func(widget.GridWrapItemID, fyne.CanvasObject), onReturn func()) *iconGrid {
	g := &iconGrid{onReturn: onReturn}
	g.Length = data.Length
	g.CreateItem = create
	g.UpdateItem = update
	g.ExtendBaseWidget(g)

	data.AddListener(binding.NewDataListener(g.Refresh))
	return g
}

func (g *iconGrid) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		if g.onReturn != nil {
			g.onReturn()
		}
	default:
		g.GridWrap.TypedKey(ev)
	}
}

// iconTile renders one icon of the grid.
type iconTile struct {
	widget.BaseWidget

	sizer *tileSizer
	image *canvas.Image
	id    widget.GridWrapItemID

	onTapped       func(widget.GridWrapItemID)
	onDoubleTapped func(widget.GridWrapItemID)
}

func newIconTile(sizer *tileSizer, tapped, doubleTapped func(widget.GridWrapItemID)) *iconTile {
	img := canvas.NewImageFromResource(theme.BrokenImageIcon())
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSquareSize(sizer.icon))

	t := &iconTile{
		sizer:          sizer,
		image:          img,
		id:             -1,
		onTapped:       tapped,
		onDoubleTapped: doubleTapped,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *iconTile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewCenter(t.image))
}

func (t *iconTile) MinSize() fyne.Size {
	return fyne.NewSquareSize(t.sizer.tile)
}

// set shows res for grid item id.
func (t *iconTile) set(id widget.GridWrapItemID, res fyne.Resource) {
	t.id = id
	t.image.Resource = res
	t.image.SetMinSize(fyne.NewSquareSize(t.sizer.icon))
	t.image.Refresh()
}

func (t *iconTile) Tapped(*fyne.PointEvent) {
	if t.onTapped != nil && t.id >= 0 {
		t.onTapped(t.id)
	}
}

func (t *iconTile) DoubleTapped(*fyne.PointEvent) {
	if t.onDoubleTapped != nil && t.id >= 0 {
		t.onDoubleTapped(t.id)
	}
}
