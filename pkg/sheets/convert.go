package sheets

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// NA is the result of converting a non-numeric string to a number.
const NA = "N/A"

// Date and time layouts used when a temporal cell is converted to a string.
const (
	DateLayout     = "02/01/06"
	ClockLayout    = "15:04:05"
	DateTimeLayout = "02/01/06 15:04:05"
)

// Kind is a conversion target.
type Kind int

const (
	// KindString converts to string.
	KindString Kind = iota
	// KindInt converts to int.
	KindInt
	// KindFloat converts to float64.
	KindFloat
	// KindBool converts to bool.
	KindBool
)

var kindNames = map[string]Kind{
	"string": KindString,
	"str":    KindString,
	"int":    KindInt,
	"float":  KindFloat,
	"bool":   KindBool,
}

// ParseKind maps a type name such as "int" or "float" to a Kind.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Converter turns a cell value into a new value, either with Func or with
// the built-in conversion table towards To.
type Converter struct {
	To   Kind
	Func func(value any) any
}

// To returns a Converter using the built-in table towards k.
func To(k Kind) Converter {
	return Converter{To: k}
}

// Using returns a Converter calling fn.
func Using(fn func(value any) any) Converter {
	return Converter{Func: fn}
}

// Convert applies the converter to value.
func (c Converter) Convert(value any) any {
	if c.Func != nil {
		return c.Func(value)
	}
	return ConvertValue(value, c.To)
}

// ConvertValue converts value to kind using the built-in table. Strings that
// do not parse as numbers become NA, floats truncate towards zero when
// converted to int, and empty cells become 0.0, 0 or Empty.
func ConvertValue(value any, kind Kind) any {
	switch v := value.(type) {
	case nil:
		return emptyTo(kind)
	case string:
		if v == "" {
			return emptyTo(kind)
		}
		return stringTo(v, kind)
	case bool:
		return boolTo(v, kind)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return intTo(v, kind)
	case float32, float64:
		return floatTo(cast.ToFloat64(v), kind)
	case Date:
		return temporalTo(v, v.Format(DateLayout), kind)
	case Clock:
		return temporalTo(v, v.Format(ClockLayout), kind)
	case time.Time:
		return temporalTo(v, v.Format(DateTimeLayout), kind)
	default:
		if kind == KindString {
			return cast.ToString(v)
		}
		return v
	}
}

func emptyTo(kind Kind) any {
	switch kind {
	case KindFloat:
		return 0.0
	case KindInt:
		return 0
	default:
		return Empty
	}
}

func stringTo(s string, kind Kind) any {
	switch kind {
	case KindFloat:
		f, err := cast.ToFloat64E(strings.TrimSpace(s))
		if err != nil {
			return NA
		}
		return f
	case KindInt:
		f, err := cast.ToFloat64E(strings.TrimSpace(s))
		if err != nil {
			return NA
		}
		return int(f)
	case KindBool:
		b, err := cast.ToBoolE(strings.TrimSpace(s))
		if err != nil {
			return NA
		}
		return b
	default:
		return s
	}
}

func boolTo(b bool, kind Kind) any {
	switch kind {
	case KindInt:
		return cast.ToInt(b)
	case KindFloat:
		return cast.ToFloat64(b)
	case KindString:
		return cast.ToString(b)
	default:
		return b
	}
}

func intTo(v any, kind Kind) any {
	switch kind {
	case KindFloat:
		return cast.ToFloat64(v)
	case KindString:
		return cast.ToString(v)
	case KindBool:
		return cast.ToInt64(v) != 0
	default:
		return cast.ToInt(v)
	}
}

func floatTo(f float64, kind Kind) any {
	switch kind {
	case KindInt:
		return int(f)
	case KindString:
		return cast.ToString(f)
	case KindBool:
		return f != 0
	default:
		return f
	}
}

func temporalTo(v any, formatted string, kind Kind) any {
	if kind == KindString {
		return formatted
	}
	return v
}
