package draw

// Pen selects the color a canvas pixel is drawn with. The zero Pen is an
// empty pixel.
type Pen uint8

const (
	PenNone Pen = iota
	PenWhite
	PenRed
	PenGreen
	PenBlue
	PenOrange
)

// ANSI color sequences used for HUD text and canvas pixels.
const (
	ColorReset      = "\033[0m"
	ColorWhite      = "\033[97m"
	ColorRed        = "\033[91m"
	ColorGreen      = "\033[92m"
	ColorBlue       = "\033[94m"
	ColorOrange     = "\033[38;5;202m"
	ColorBrightCyan = "\033[96m"
	ColorDim        = "\033[2m"
)

// ANSI returns the escape sequence that selects the pen's foreground color.
func (p Pen) ANSI() string {
	switch p {
	case PenWhite:
		return ColorWhite
	case PenRed:
		return ColorRed
	case PenGreen:
		return ColorGreen
	case PenBlue:
		return ColorBlue
	case PenOrange:
		return ColorOrange
	default:
		return ColorReset
	}
}

// PenForHex maps the "#RRGGBB" colors used by game entities to a pen.
// Unknown colors draw white.
func PenForHex(hex string) Pen {
	switch hex {
	case "#FF0000":
		return PenRed
	case "#00FF00":
		return PenGreen
	case "#0000FF":
		return PenBlue
	case "#FF4500":
		return PenOrange
	default:
		return PenWhite
	}
}
