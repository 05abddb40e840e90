package window

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrBackdropUnsupported is returned when a handle offers no way to apply a
// backdrop effect.
var ErrBackdropUnsupported = errors.New("backdrop effect not supported")

// Decorator adds platform-specific construction options. Decorate runs before
// the host builds the window and AfterBuild runs once it exists. AfterBuild
// errors are cosmetic: the service logs and drops them.
type Decorator interface {
	Name() string
	Decorate(opts *BuildOptions)
	AfterBuild(h Handle) error
}

// BackdropHandle is implemented by handles whose host exposes a backdrop API.
type BackdropHandle interface {
	ApplyBackdrop(effect Effect) error
}

// NativeHandle is implemented by handles that can hand out the OS window
// handle (an HWND on windows).
type NativeHandle interface {
	NativeHandle() uintptr
}

// Platform decorator names.
const (
	PlatformOverlay    = "overlay"
	PlatformBorderless = "borderless"
	PlatformMica       = "mica"
	PlatformPlain      = "plain"
)

// DecoratorFor maps a GOOS value, or a decorator name, to its decorator.
// An empty platform selects the decorator for the running OS.
func DecoratorFor(platform string) (Decorator, error) {
	if platform == "" {
		return DefaultDecorator(), nil
	}
	switch strings.ToLower(platform) {
	case "darwin", "macos", "ios", PlatformOverlay:
		return overlayDecorator{}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", PlatformBorderless:
		return borderlessDecorator{}, nil
	case "windows", PlatformMica:
		return micaDecorator{}, nil
	case PlatformPlain, "none":
		return plainDecorator{}, nil
	default:
		return nil, fmt.Errorf("unknown window platform %q", platform)
	}
}

// DefaultDecorator returns the decorator for runtime.GOOS, or the plain one
// when the OS has no dedicated variant.
func DefaultDecorator() Decorator {
	d, err := DecoratorFor(runtime.GOOS)
	if err != nil {
		return plainDecorator{}
	}
	return d
}

// overlayDecorator draws content under a hidden, overlaid title bar with the
// traffic lights inset into the page chrome.
type overlayDecorator struct{}

func (overlayDecorator) Name() string { return PlatformOverlay }

func (overlayDecorator) Decorate(opts *BuildOptions) {
	opts.HiddenTitle = true
	opts.TitleBarStyle = TitleBarOverlay
	opts.BackgroundColor = &Color{R: 0, G: 0, B: 0, A: 1}
	opts.TrafficLightPosition = &LogicalPosition{X: 20, Y: 30}
	opts.AcceptFirstMouse = true
	opts.Effects = append(opts.Effects, EffectMenu)
}

func (overlayDecorator) AfterBuild(Handle) error { return nil }

type borderlessDecorator struct{}

func (borderlessDecorator) Name() string { return PlatformBorderless }

func (borderlessDecorator) Decorate(opts *BuildOptions) {
	opts.Decorations = false
}

func (borderlessDecorator) AfterBuild(Handle) error { return nil }

// micaDecorator leaves construction alone and applies the mica backdrop to
// the built window.
type micaDecorator struct{}

func (micaDecorator) Name() string { return PlatformMica }

func (micaDecorator) Decorate(*BuildOptions) {}

func (micaDecorator) AfterBuild(h Handle) error {
	if b, ok := h.(BackdropHandle); ok {
		return b.ApplyBackdrop(EffectMica)
	}
	if n, ok := h.(NativeHandle); ok {
		return setNativeMica(n.NativeHandle())
	}
	return ErrBackdropUnsupported
}

type plainDecorator struct{}

func (plainDecorator) Name() string { return PlatformPlain }

func (plainDecorator) Decorate(*BuildOptions) {}

func (plainDecorator) AfterBuild(Handle) error { return nil }
