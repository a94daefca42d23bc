package pair

// Widget has a size.
type Widget struct {
	size int
}

// NewWidget creates a widget.
//
//sure:fixture [3]
func NewWidget(size int) *Widget {
	return &Widget{size: size}
}

// Size reports the size.
//
//sure:scenario description="wrong size" expect=999
func (w *Widget) Size() int {
	return w.size
}

// Resize returns a resized copy.
//
//sure:fixture [4]
func (w *Widget) Resize(size int) *Widget {
	return &Widget{size: size}
}
