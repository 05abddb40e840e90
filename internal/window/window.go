// Package window is the command façade the front-end uses to control native
// windows. It keeps no window state: every operation resolves a label in the
// host registry, branches on existence, calls the host and reports a status
// token or an *Error.
package window

// Status is the outcome token returned to the caller.
type Status string

const (
	StatusExisting    Status = "existing"
	StatusCreated     Status = "created"
	StatusClosed      Status = "closed"
	StatusShown       Status = "shown"
	StatusHidden      Status = "hidden"
	StatusDragging    Status = "dragging"
	StatusMinimized   Status = "minimized"
	StatusMaximized   Status = "maximized"
	StatusUnmaximized Status = "unmaximized"
)

// Defaults applied by CreateOrShow when the request omits a field.
const (
	DefaultTitle  = "Ren Flow"
	DefaultWidth  = 850.0
	DefaultHeight = 530.0
)

// Handle is the per-window control surface. Handles are owned by the host and
// must not be kept beyond the call that looked them up.
type Handle interface {
	Label() string
	Unminimize() error
	SetFocus() error
	Show() error
	Hide() error
	Close() error
	StartDragging() error
	Minimize() error
	Maximize() error
	Unmaximize() error
	IsMaximized() (bool, error)
}

// Host is the windowing subsystem: a label-keyed registry plus a builder.
// Implementations are responsible for all synchronization and must never
// hold two live windows under one label.
type Host interface {
	// Window looks up a live window by label.
	Window(label string) (Handle, bool)
	// Build creates and registers a window.
	Build(opts BuildOptions) (Handle, error)
}

// CreateOptions is the window creation request. Nil optional fields take the
// service defaults.
type CreateOptions struct {
	Label  string   `json:"label"`
	URL    string   `json:"url"`
	Title  *string  `json:"title,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// TitleBarStyle selects the title bar presentation on the overlay platform.
type TitleBarStyle string

const (
	TitleBarVisible     TitleBarStyle = "visible"
	TitleBarTransparent TitleBarStyle = "transparent"
	TitleBarOverlay     TitleBarStyle = "overlay"
)

// Effect is a platform visual effect applied to the window background.
type Effect string

const (
	EffectMenu Effect = "menu"
	EffectMica Effect = "mica"
)

// Color is an RGBA background color.
type Color struct {
	R, G, B, A uint8
}

// LogicalPosition is a DPI-independent point.
type LogicalPosition struct {
	X, Y float64
}

// BuildOptions is everything the host needs to construct a window. The
// façade fills the common fields and a Decorator adds the platform ones.
type BuildOptions struct {
	Label string
	URL   string
	Title string

	Width  float64
	Height float64

	DisableDragDrop bool
	Transparent     bool
	Decorations     bool

	HiddenTitle          bool
	TitleBarStyle        TitleBarStyle
	BackgroundColor      *Color
	TrafficLightPosition *LogicalPosition
	AcceptFirstMouse     bool
	Effects              []Effect
}

// Defaults holds the values used for omitted CreateOptions fields.
type Defaults struct {
	Title  string
	Width  float64
	Height float64
}

// StandardDefaults returns the built-in defaults.
func StandardDefaults() Defaults {
	return Defaults{
		Title:  DefaultTitle,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

func (d Defaults) normalized() Defaults {
	std := StandardDefaults()
	if d.Title == "" {
		d.Title = std.Title
	}
	if d.Width <= 0 {
		d.Width = std.Width
	}
	if d.Height <= 0 {
		d.Height = std.Height
	}
	return d
}

// buildOptions resolves a request into the platform-neutral build options.
func (o CreateOptions) buildOptions(d Defaults) BuildOptions {
	opts := BuildOptions{
		Label:           o.Label,
		URL:             o.URL,
		Title:           d.Title,
		Width:           d.Width,
		Height:          d.Height,
		DisableDragDrop: true,
		Transparent:     true,
		Decorations:     true,
	}
	if o.Title != nil {
		opts.Title = *o.Title
	}
	if o.Width != nil {
		opts.Width = *o.Width
	}
	if o.Height != nil {
		opts.Height = *o.Height
	}
	return opts
}
