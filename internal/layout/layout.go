// Package layout decodes SCALE encoded runtime-call results into generic values
// using declared type layouts, and encodes such values back.
//
// Decoded values use a small set of Go types: uint64 for fixed width and compact
// integers that fit, *big.Int for u128 and wider compacts, bool, []byte for
// account ids and byte vectors, []any for vectors and tuples, nil for an empty
// option and map[string]any for structs.
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Error reports a failure to decode a value at a path inside a layout.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("scale decode: %v", e.Err)
	}
	return fmt.Sprintf("scale decode %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrTrailingBytes is returned when input remains after the top level value.
var ErrTrailingBytes = errors.New("trailing bytes after value")

// Type is a SCALE type layout.
type Type interface {
	decode(d *scale.Decoder, path string) (any, error)
	encode(e *scale.Encoder, v any) error
	String() string
}

// Decode decodes raw as a single value of type t.
func Decode(t Type, raw []byte) (any, error) {
	r := bytes.NewReader(raw)
	v, err := t.decode(scale.NewDecoder(r), "")
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, &Error{Err: fmt.Errorf("%w: %d left decoding %s", ErrTrailingBytes, r.Len(), t)}
	}
	return v, nil
}

// Encode encodes v according to t. Values use the same Go types Decode
// produces. A nil value, or a struct field missing from its map, encodes as the
// zero value of its type.
func Encode(t Type, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.encode(scale.NewEncoder(&buf), v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func wrap(path string, err error) error {
	var le *Error
	if errors.As(err, &le) {
		return err
	}
	return &Error{Path: path, Err: err}
}

type fixed struct {
	name string
	bits int
}

var (
	U8  Type = fixed{"u8", 8}
	U16 Type = fixed{"u16", 16}
	U32 Type = fixed{"u32", 32}
	U64 Type = fixed{"u64", 64}
	// U128 also carries fixed-point I96F32 values as their raw bits.
	U128 Type = fixed{"u128", 128}
)

func (f fixed) String() string { return f.name }

func (f fixed) decode(d *scale.Decoder, path string) (any, error) {
	switch f.bits {
	case 8:
		var v uint8
		if err := d.Decode(&v); err != nil {
			return nil, wrap(path, err)
		}
		return uint64(v), nil
	case 16:
		var v uint16
		if err := d.Decode(&v); err != nil {
			return nil, wrap(path, err)
		}
		return uint64(v), nil
	case 32:
		var v uint32
		if err := d.Decode(&v); err != nil {
			return nil, wrap(path, err)
		}
		return uint64(v), nil
	case 64:
		var v uint64
		if err := d.Decode(&v); err != nil {
			return nil, wrap(path, err)
		}
		return v, nil
	default:
		buf := make([]byte, f.bits/8)
		if err := d.Read(buf); err != nil {
			return nil, wrap(path, err)
		}
		// little endian on the wire
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
		return new(big.Int).SetBytes(buf), nil
	}
}

func (f fixed) encode(e *scale.Encoder, v any) error {
	if f.bits > 64 {
		n, err := toBigInt(v)
		if err != nil {
			return err
		}
		if n.BitLen() > f.bits {
			return fmt.Errorf("%v overflows %s", n, f.name)
		}
		buf := n.FillBytes(make([]byte, f.bits/8))
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
		return e.Write(buf)
	}

	n, err := toUint64(v)
	if err != nil {
		return err
	}
	if f.bits < 64 && n >= 1<<f.bits {
		return fmt.Errorf("%d overflows %s", n, f.name)
	}
	switch f.bits {
	case 8:
		return e.Encode(uint8(n))
	case 16:
		return e.Encode(uint16(n))
	case 32:
		return e.Encode(uint32(n))
	default:
		return e.Encode(n)
	}
}

type compact struct{}

// Compact is a compact encoded unsigned integer of any width.
var Compact Type = compact{}

func (compact) String() string { return "Compact" }

func (compact) decode(d *scale.Decoder, path string) (any, error) {
	v, err := d.DecodeUintCompact()
	if err != nil {
		return nil, wrap(path, err)
	}
	if v.IsUint64() {
		return v.Uint64(), nil
	}
	return v, nil
}

func (c compact) encode(e *scale.Encoder, v any) error {
	n, err := toBigInt(v)
	if err != nil {
		return err
	}
	return e.EncodeUintCompact(*n)
}

type boolean struct{}

var Bool Type = boolean{}

func (boolean) String() string { return "bool" }

func (boolean) decode(d *scale.Decoder, path string) (any, error) {
	var v bool
	if err := d.Decode(&v); err != nil {
		return nil, wrap(path, err)
	}
	return v, nil
}

func (boolean) encode(e *scale.Encoder, v any) error {
	if v == nil {
		v = false
	}
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T", v)
	}
	return e.Encode(b)
}

type accountID struct{}

// AccountID is a 32 byte public key. It decodes to []byte.
var AccountID Type = accountID{}

func (accountID) String() string { return "AccountId" }

func (accountID) decode(d *scale.Decoder, path string) (any, error) {
	buf := make([]byte, 32)
	if err := d.Read(buf); err != nil {
		return nil, wrap(path, err)
	}
	return buf, nil
}

func (a accountID) encode(e *scale.Encoder, v any) error {
	if v == nil {
		v = make([]byte, 32)
	}
	b, ok := v.([]byte)
	if !ok || len(b) != 32 {
		return fmt.Errorf("expected 32 byte account id, got %T", v)
	}
	return e.Write(b)
}

type byteVec struct{}

// Bytes is Vec<u8>. It decodes to []byte.
var Bytes Type = byteVec{}

func (byteVec) String() string { return "Bytes" }

func (byteVec) decode(d *scale.Decoder, path string) (any, error) {
	n, err := decodeLen(d)
	if err != nil {
		return nil, wrap(path, err)
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if err := d.Read(buf); err != nil {
		return nil, wrap(path, err)
	}
	return buf, nil
}

func (byteVec) encode(e *scale.Encoder, v any) error {
	if v == nil {
		v = []byte{}
	}
	b, ok := v.([]byte)
	if !ok {
		return fmt.Errorf("expected bytes, got %T", v)
	}
	if err := encodeLen(e, len(b)); err != nil {
		return err
	}
	return e.Write(b)
}

type vec struct{ elem Type }

// Vec is a length prefixed sequence of elem.
func Vec(elem Type) Type { return vec{elem} }

func (v vec) String() string { return "Vec<" + v.elem.String() + ">" }

func (v vec) decode(d *scale.Decoder, path string) (any, error) {
	n, err := decodeLen(d)
	if err != nil {
		return nil, wrap(path, err)
	}
	out := make([]any, 0, n)
	for i := uint64(0); i < n; i++ {
		el, err := v.elem.decode(d, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	return out, nil
}

func (v vec) encode(e *scale.Encoder, value any) error {
	if value == nil {
		value = []any{}
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("expected []any for %s, got %T", v, value)
	}
	if err := encodeLen(e, len(items)); err != nil {
		return err
	}
	for i, item := range items {
		if err := v.elem.encode(e, item); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	return nil
}

type option struct{ elem Type }

// Option decodes to nil when absent and to the element value otherwise.
func Option(elem Type) Type { return option{elem} }

func (o option) String() string { return "Option<" + o.elem.String() + ">" }

func (o option) decode(d *scale.Decoder, path string) (any, error) {
	tag, err := d.ReadOneByte()
	if err != nil {
		return nil, wrap(path, err)
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		return o.elem.decode(d, path)
	default:
		return nil, wrap(path, fmt.Errorf("invalid option tag %d", tag))
	}
}

func (o option) encode(e *scale.Encoder, v any) error {
	if v == nil {
		return e.PushByte(0)
	}
	if err := e.PushByte(1); err != nil {
		return err
	}
	return o.elem.encode(e, v)
}

type tuple struct{ elems []Type }

// Tuple decodes to a []any with one value per element type.
func Tuple(elems ...Type) Type { return tuple{elems} }

func (t tuple) String() string {
	s := "("
	for i, el := range t.elems {
		if i > 0 {
			s += ", "
		}
		s += el.String()
	}
	return s + ")"
}

func (t tuple) decode(d *scale.Decoder, path string) (any, error) {
	out := make([]any, len(t.elems))
	for i, el := range t.elems {
		v, err := el.decode(d, fmt.Sprintf("%s.%d", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (t tuple) encode(e *scale.Encoder, v any) error {
	if v == nil {
		v = make([]any, len(t.elems))
	}
	items, ok := v.([]any)
	if !ok || len(items) != len(t.elems) {
		return fmt.Errorf("expected %d element tuple for %s, got %v", len(t.elems), t, v)
	}
	for i, el := range t.elems {
		if err := el.encode(e, items[i]); err != nil {
			return fmt.Errorf("%d: %w", i, err)
		}
	}
	return nil
}

// Field is a named member of a Struct.
type Field struct {
	Name string
	Type Type
}

type structType struct {
	name   string
	fields []Field
}

// Struct decodes fields in declaration order into a map keyed by field name.
func Struct(name string, fields ...Field) Type {
	return structType{name: name, fields: fields}
}

func (s structType) String() string { return s.name }

func (s structType) decode(d *scale.Decoder, path string) (any, error) {
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		v, err := f.Type.decode(d, join(path, f.Name))
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}
	return out, nil
}

func (s structType) encode(e *scale.Encoder, v any) error {
	if v == nil {
		v = map[string]any{}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("expected map for %s, got %T", s, v)
	}
	for _, f := range s.fields {
		if err := f.Type.encode(e, m[f.Name]); err != nil {
			return fmt.Errorf("%s.%s: %w", s.name, f.Name, err)
		}
	}
	return nil
}

// maxLen bounds vector lengths read from the wire.
const maxLen = 1 << 24

func decodeLen(d *scale.Decoder) (uint64, error) {
	n, err := d.DecodeUintCompact()
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() || n.Uint64() > maxLen {
		return 0, fmt.Errorf("length %v exceeds limit", n)
	}
	return n.Uint64(), nil
}

func encodeLen(e *scale.Encoder, n int) error {
	return e.EncodeUintCompact(*new(big.Int).SetInt64(int64(n)))
}

func toBigInt(v any) (*big.Int, error) {
	if n, ok := v.(*big.Int); ok {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %v", n)
		}
		return n, nil
	}
	n, err := toUint64(v)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(n), nil
}

func toUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case *big.Int:
		if n.Sign() < 0 || !n.IsUint64() {
			return 0, fmt.Errorf("%v out of uint64 range", n)
		}
		return n.Uint64(), nil
	case uint64:
		return n, nil
	case uint32:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint:
		return uint64(n), nil
	case int:
		if n < 0 {
			return 0, fmt.Errorf("negative value %d", n)
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("negative value %d", n)
		}
		return uint64(n), nil
	default:
		return 0, fmt.Errorf("expected unsigned integer, got %T", v)
	}
}
