package cairo

/*
#cgo pkg-config: cairo
#include <cairo.h>
*/
import "C"

// FontSlant mirrors cairo_font_slant_t.
type FontSlant int

const (
	FontSlantNormal  FontSlant = C.CAIRO_FONT_SLANT_NORMAL
	FontSlantItalic  FontSlant = C.CAIRO_FONT_SLANT_ITALIC
	FontSlantOblique FontSlant = C.CAIRO_FONT_SLANT_OBLIQUE
)

func (s FontSlant) String() string {
	switch s {
	case FontSlantNormal:
		return "normal"
	case FontSlantItalic:
		return "italic"
	case FontSlantOblique:
		return "oblique"
	default:
		return "unknown"
	}
}

// FontWeight mirrors cairo_font_weight_t.
type FontWeight int

const (
	FontWeightNormal FontWeight = C.CAIRO_FONT_WEIGHT_NORMAL
	FontWeightBold   FontWeight = C.CAIRO_FONT_WEIGHT_BOLD
)

func (w FontWeight) String() string {
	switch w {
	case FontWeightNormal:
		return "normal"
	case FontWeightBold:
		return "bold"
	default:
		return "unknown"
	}
}

// FontType mirrors cairo_font_type_t, the tag cairo reports for the
// concrete kind of a font face or scaled font. The set is open-ended;
// future cairo versions may report tags with no constant here.
type FontType int

const (
	FontTypeToy    FontType = C.CAIRO_FONT_TYPE_TOY
	FontTypeFT     FontType = C.CAIRO_FONT_TYPE_FT
	FontTypeWin32  FontType = C.CAIRO_FONT_TYPE_WIN32
	FontTypeQuartz FontType = C.CAIRO_FONT_TYPE_QUARTZ
	FontTypeUser   FontType = C.CAIRO_FONT_TYPE_USER
)

// Antialias mirrors cairo_antialias_t.
type Antialias int

const (
	AntialiasDefault  Antialias = C.CAIRO_ANTIALIAS_DEFAULT
	AntialiasNone     Antialias = C.CAIRO_ANTIALIAS_NONE
	AntialiasGray     Antialias = C.CAIRO_ANTIALIAS_GRAY
	AntialiasSubpixel Antialias = C.CAIRO_ANTIALIAS_SUBPIXEL
	AntialiasFast     Antialias = C.CAIRO_ANTIALIAS_FAST
	AntialiasGood     Antialias = C.CAIRO_ANTIALIAS_GOOD
	AntialiasBest     Antialias = C.CAIRO_ANTIALIAS_BEST
)

func (a Antialias) String() string {
	switch a {
	case AntialiasDefault:
		return "default"
	case AntialiasNone:
		return "none"
	case AntialiasGray:
		return "gray"
	case AntialiasSubpixel:
		return "subpixel"
	case AntialiasFast:
		return "fast"
	case AntialiasGood:
		return "good"
	case AntialiasBest:
		return "best"
	default:
		return "unknown"
	}
}

// SubpixelOrder mirrors cairo_subpixel_order_t.
type SubpixelOrder int

const (
	SubpixelOrderDefault SubpixelOrder = C.CAIRO_SUBPIXEL_ORDER_DEFAULT
	SubpixelOrderRGB     SubpixelOrder = C.CAIRO_SUBPIXEL_ORDER_RGB
	SubpixelOrderBGR     SubpixelOrder = C.CAIRO_SUBPIXEL_ORDER_BGR
	SubpixelOrderVRGB    SubpixelOrder = C.CAIRO_SUBPIXEL_ORDER_VRGB
	SubpixelOrderVBGR    SubpixelOrder = C.CAIRO_SUBPIXEL_ORDER_VBGR
)

// HintStyle mirrors cairo_hint_style_t.
type HintStyle int

const (
	HintStyleDefault HintStyle = C.CAIRO_HINT_STYLE_DEFAULT
	HintStyleNone    HintStyle = C.CAIRO_HINT_STYLE_NONE
	HintStyleSlight  HintStyle = C.CAIRO_HINT_STYLE_SLIGHT
	HintStyleMedium  HintStyle = C.CAIRO_HINT_STYLE_MEDIUM
	HintStyleFull    HintStyle = C.CAIRO_HINT_STYLE_FULL
)

func (h HintStyle) String() string {
	switch h {
	case HintStyleDefault:
		return "default"
	case HintStyleNone:
		return "none"
	case HintStyleSlight:
		return "slight"
	case HintStyleMedium:
		return "medium"
	case HintStyleFull:
		return "full"
	default:
		return "unknown"
	}
}

// HintMetrics mirrors cairo_hint_metrics_t.
type HintMetrics int

const (
	HintMetricsDefault HintMetrics = C.CAIRO_HINT_METRICS_DEFAULT
	HintMetricsOff     HintMetrics = C.CAIRO_HINT_METRICS_OFF
	HintMetricsOn      HintMetrics = C.CAIRO_HINT_METRICS_ON
)

// ClusterFlags mirrors cairo_text_cluster_flags_t, describing the layout
// direction of text clusters.
type ClusterFlags int

// ClusterFlagBackward means the clusters in a cluster array map glyphs to
// text bytes in reverse order.
const ClusterFlagBackward ClusterFlags = C.CAIRO_TEXT_CLUSTER_FLAG_BACKWARD

// Format mirrors cairo_format_t for image surfaces.
type Format int

const (
	FormatARGB32 Format = C.CAIRO_FORMAT_ARGB32
	FormatRGB24  Format = C.CAIRO_FORMAT_RGB24
	FormatA8     Format = C.CAIRO_FORMAT_A8
	FormatA1     Format = C.CAIRO_FORMAT_A1
)
