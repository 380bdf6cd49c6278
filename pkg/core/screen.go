package core

// ScreenSize is an output resolution
type ScreenSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewScreenSize creates a screen size
func NewScreenSize(width, height int) ScreenSize {
	return ScreenSize{Width: width, Height: height}
}

// Aspect returns width/height, or 0 when height is not positive
func (s ScreenSize) Aspect() float64 {
	if s.Height <= 0 {
		return 0
	}
	return float64(s.Width) / float64(s.Height)
}

// WithAspect returns a size of the given width whose height matches aspect
func WithAspect(width int, aspect float64) ScreenSize {
	if aspect <= 0 {
		return ScreenSize{Width: width}
	}
	height := int(float64(width)/aspect + 0.5)
	if height < 1 {
		height = 1
	}
	return ScreenSize{Width: width, Height: height}
}
