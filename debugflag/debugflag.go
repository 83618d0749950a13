package debugflag

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/errors"
	"github.com/ifml-editor-alpha/platformkit/status"
)

// optionsEntry is the component entry holding debug options.
const optionsEntry = ".options"

// Style selects how a flag formats its trace output.
type Style int

const (
	// StylePlain prefixes trace lines with the flag name only.
	StylePlain Style = iota
	// StyleLocated additionally includes the caller's file and line.
	StyleLocated
)

// Flag is a single named debug option with its loaded state. The zero value
// is a disabled plain flag.
type Flag struct {
	name    string
	style   Style
	enabled bool
}

// Set holds the debug options loaded for one component.
type Set struct {
	component string
	values    map[string]bool
}

// Load reads the component's debug options from its ".options" entry.
//
// Components without entry support, and components without an ".options"
// entry, yield a Set with every flag disabled. Keys belonging to other
// components and values that are not booleans are skipped with a warning
// through the status sink.
func Load(c core.Component) (*Set, error) {
	if c == nil {
		return nil, errors.New(errors.CodeInvalidInput, "component must not be nil")
	}
	s := &Set{component: c.Name(), values: make(map[string]bool)}
	ep, ok := c.(core.EntryProvider)
	if !ok {
		return s, nil
	}
	rc, err := ep.Entry(optionsEntry)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, errors.Wrapf(err, errors.CodeIO, "opening %s entry of %s", optionsEntry, s.component)
	}
	defer rc.Close()

	// Option keys contain dots and slashes, so the usual dot delimiter
	// would split them apart.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigType("properties")
	if err := v.ReadConfig(rc); err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidConfig, "parsing %s entry of %s", optionsEntry, s.component)
	}

	prefix := strings.ToLower(s.component) + "/"
	for _, key := range v.AllKeys() {
		if !strings.HasPrefix(key, prefix) {
			status.LogWarning(nil, fmt.Sprintf("ignoring debug option %q owned by another component", key), s.component)
			continue
		}
		enabled, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			status.LogWarning(err, fmt.Sprintf("debug option %q has a non-boolean value", key), s.component)
			continue
		}
		s.values[key] = enabled
	}
	return s, nil
}

// Flag returns the named flag in the given style. Names are matched against
// "<component>/debug/<name>" keys, ignoring case.
func (s *Set) Flag(name string, style Style) Flag {
	key := strings.ToLower(s.component + "/debug/" + name)
	return Flag{name: name, style: style, enabled: s.values[key]}
}

// Name returns the flag's option name.
func (f Flag) Name() string { return f.name }

// Enabled reports whether the flag was switched on in the loaded options.
func (f Flag) Enabled() bool { return f.enabled }

// Logf emits a trace line through the status sink when the flag is enabled,
// formatted according to the flag's style.
func (f Flag) Logf(format string, args ...any) {
	if !f.enabled {
		return
	}
	l := status.Logger()
	l.Debug().Str("flag", f.name).Msg(f.formatLine(fmt.Sprintf(format, args...)))
}

func (f Flag) formatLine(msg string) string {
	switch f.style {
	case StyleLocated:
		if _, file, line, ok := runtime.Caller(2); ok {
			return fmt.Sprintf("%s %s:%d: %s", f.name, filepath.Base(file), line, msg)
		}
		return fmt.Sprintf("%s: %s", f.name, msg)
	default:
		return fmt.Sprintf("%s: %s", f.name, msg)
	}
}
