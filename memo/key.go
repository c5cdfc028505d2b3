package memo

import (
	"bytes"
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/hashstructure/v2"
	gotilsstrconv "github.com/savsgio/gotils/strconv"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrKeyDerivation is wrapped by every error returned from a Keyer.
var ErrKeyDerivation = errors.New("memo: cannot derive cache key")

// Keyer maps call arguments to a cache key. Equal argument values must map
// to equal keys.
type Keyer interface {
	Key(args Args) (string, error)
}

// KeyerFunc adapts a function to the Keyer interface.
type KeyerFunc func(args Args) (string, error)

func (f KeyerFunc) Key(args Args) (string, error) {
	return f(args)
}

// NewKeyer returns the Keyer for a strategy. Unknown strategies fall back to
// KeyString.
func NewKeyer(strategy KeyStrategy) Keyer {
	switch strategy {
	case KeySerialized:
		return safeKeyer{serializedKeyer{}}
	case KeyHashed:
		return safeKeyer{hashedKeyer{}}
	default:
		return safeKeyer{stringKeyer{}}
	}
}

// safeKeyer turns a panic inside key derivation into an error.
type safeKeyer struct {
	next Keyer
}

func (k safeKeyer) Key(args Args) (key string, err error) {
	defer func() {
		if r := recover(); r != nil {
			key = ""
			err = errors.Wrapf(ErrKeyDerivation, "panic: %v", r)
		}
	}()
	return k.next.Key(args)
}

// stringKeyer renders every value with %#v. Values whose Go syntax
// representation does not identify them, such as pointers, produce keys that
// are stable only for the same pointer.
type stringKeyer struct{}

func (stringKeyer) Key(args Args) (string, error) {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range args.Positional {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%#v", v)
	}
	sb.WriteString("; ")
	for i, name := range args.names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%#v", name, args.Named[name])
	}
	sb.WriteByte(')')
	return sb.String(), nil
}

// serializedKeyer encodes the arguments with msgpack. Each value is tagged
// with its dynamic type so that int(1) and int64(1) do not collide. Structs
// with unexported fields cannot be keyed unless they encode themselves.
type serializedKeyer struct{}

type taggedValue struct {
	_msgpack struct{} `msgpack:",as_array"`
	Name     string
	Type     string
	Value    any
}

var (
	customEncoderType   = reflect.TypeFor[msgpack.CustomEncoder]()
	marshalerType       = reflect.TypeFor[msgpack.Marshaler]()
	binaryMarshalerType = reflect.TypeFor[encoding.BinaryMarshaler]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	hashableType        = reflect.TypeFor[hashstructure.Hashable]()
	timeType            = reflect.TypeFor[time.Time]()
)

// maxKeyDepth bounds the walk over nested values, which also stops on cycles.
const maxKeyDepth = 32

// encodesItself reports whether msgpack encodes t through its own method
// instead of its exported fields.
func encodesItself(t reflect.Type) bool {
	return t.Implements(customEncoderType) || t.Implements(marshalerType) ||
		t.Implements(binaryMarshalerType) || t.Implements(textMarshalerType)
}

// hashesItself reports whether hashstructure hashes t by value.
func hashesItself(t reflect.Type) bool {
	return t == timeType || t.Implements(hashableType)
}

// checkFields rejects values holding structs with unexported fields. Both
// encoders skip those fields, so two different values would share a key.
func checkFields(v reflect.Value, self func(reflect.Type) bool, depth int) error {
	if !v.IsValid() {
		return nil
	}
	if depth > maxKeyDepth {
		return errors.Wrapf(ErrKeyDerivation, "value nested deeper than %d levels", maxKeyDepth)
	}
	t := v.Type()
	if self(t) {
		return nil
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return checkFields(v.Elem(), self, depth+1)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Name == "_" {
				continue
			}
			if !f.IsExported() {
				return errors.Wrapf(ErrKeyDerivation, "%s has unexported field %s", t, f.Name)
			}
			if err := checkFields(v.Field(i), self, depth+1); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := checkFields(v.Index(i), self, depth+1); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if err := checkFields(iter.Key(), self, depth+1); err != nil {
				return err
			}
			if err := checkFields(iter.Value(), self, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkArgs(args Args, self func(reflect.Type) bool) error {
	for _, v := range args.Positional {
		if err := checkFields(reflect.ValueOf(v), self, 0); err != nil {
			return err
		}
	}
	for _, v := range args.Named {
		if err := checkFields(reflect.ValueOf(v), self, 0); err != nil {
			return err
		}
	}
	return nil
}

func (serializedKeyer) Key(args Args) (string, error) {
	if err := checkArgs(args, encodesItself); err != nil {
		return "", err
	}
	values := make([]taggedValue, 0, args.Len())
	for _, v := range args.Positional {
		values = append(values, taggedValue{Type: fmt.Sprintf("%T", v), Value: v})
	}
	for _, name := range args.names() {
		v := args.Named[name]
		values = append(values, taggedValue{Name: name, Type: fmt.Sprintf("%T", v), Value: v})
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(values); err != nil {
		return "", errors.Wrapf(ErrKeyDerivation, "msgpack: %v", err)
	}
	// buf is not reused, so its bytes can back the key without a copy
	return gotilsstrconv.B2S(buf.Bytes()), nil
}

// hashedKeyer reduces the arguments to a 64-bit structural hash. Keys are
// short, at the cost of a small collision probability. Every value is hashed
// next to its dynamic type, since hashstructure treats false and int8(0)
// alike.
type hashedKeyer struct{}

type hashedValue struct {
	Type  string
	Value any
}

type hashInput struct {
	Positional []hashedValue
	Named      map[string]hashedValue
}

func (hashedKeyer) Key(args Args) (string, error) {
	if err := checkArgs(args, hashesItself); err != nil {
		return "", err
	}
	in := hashInput{Positional: make([]hashedValue, len(args.Positional))}
	for i, v := range args.Positional {
		in.Positional[i] = hashedValue{Type: fmt.Sprintf("%T", v), Value: v}
	}
	if len(args.Named) > 0 {
		in.Named = make(map[string]hashedValue, len(args.Named))
		for name, v := range args.Named {
			in.Named[name] = hashedValue{Type: fmt.Sprintf("%T", v), Value: v}
		}
	}
	h, err := hashstructure.Hash(in, hashstructure.FormatV2, nil)
	if err != nil {
		return "", errors.Wrapf(ErrKeyDerivation, "hashstructure: %v", err)
	}
	return strconv.FormatUint(h, 16), nil
}
