package ber

import (
	"bytes"
	"fmt"
	"slices"
)

// Encoder builds DER output. Constructed values are accumulated in a stack
// of pending scopes; closing a scope writes its tag, definite length and
// content into the enclosing scope. Output depends only on the sequence of
// calls made.
type Encoder struct {
	out   []byte
	stack []*scope
}

type scope struct {
	tag      Tag
	explicit bool
	buf      []byte
	children []int // start offset of each child TLV in buf
}

// NewEncoder creates an encoder with an optional initial capacity.
func NewEncoder(capacity int) *Encoder {
	if capacity <= 0 {
		capacity = 64
	}
	return &Encoder{
		out: make([]byte, 0, capacity),
	}
}

// Bytes returns the encoded output. It fails with ErrUnbalanced while any
// scope is still open.
func (e *Encoder) Bytes() ([]byte, error) {
	if len(e.stack) != 0 {
		return nil, fmt.Errorf("%w: %d scope(s) still open", ErrUnbalanced, len(e.stack))
	}
	return e.out, nil
}

// Reset clears the encoder for reuse.
func (e *Encoder) Reset() {
	e.out = e.out[:0]
	e.stack = e.stack[:0]
}

// Depth returns the number of open scopes.
func (e *Encoder) Depth() int {
	return len(e.stack)
}

// StartCons opens a constructed scope for tag.
func (e *Encoder) StartCons(tag Tag) error {
	return e.push(tag.AsConstructed(), false)
}

// EndCons closes the scope opened by the matching StartCons. tag must equal
// the tag it was opened with.
func (e *Encoder) EndCons(tag Tag) error {
	top, err := e.top()
	if err != nil {
		return err
	}
	if top.explicit || top.tag != tag.AsConstructed() {
		return fmt.Errorf("%w: closing %s but %s is open", ErrUnbalanced, tag.AsConstructed(), top.tag)
	}
	return e.pop()
}

// StartSequence opens a SEQUENCE.
func (e *Encoder) StartSequence() error { return e.StartCons(Sequence) }

// EndSequence closes a SEQUENCE.
func (e *Encoder) EndSequence() error { return e.EndCons(Sequence) }

// StartSet opens a SET. Its elements are sorted when it is closed.
func (e *Encoder) StartSet() error { return e.StartCons(Set) }

// EndSet closes a SET.
func (e *Encoder) EndSet() error { return e.EndCons(Set) }

// StartExplicit opens an EXPLICIT [number] wrapper.
func (e *Encoder) StartExplicit(number int) error {
	return e.push(Explicit(number), true)
}

// EndExplicit closes the wrapper opened by StartExplicit. Exactly one TLV
// must have been written since.
func (e *Encoder) EndExplicit() error {
	top, err := e.top()
	if err != nil {
		return err
	}
	if !top.explicit {
		return fmt.Errorf("%w: closing explicit tag but %s is open", ErrUnbalanced, top.tag)
	}
	if len(top.children) != 1 {
		return fmt.Errorf("%w: got %d", ErrNotSingleObject, len(top.children))
	}
	return e.pop()
}

// Cons writes a constructed value whose content is produced by fn. If fn
// fails, the partially built value is discarded and nothing is written.
func (e *Encoder) Cons(tag Tag, fn func(*Encoder) error) error {
	if err := e.StartCons(tag); err != nil {
		return err
	}
	depth := len(e.stack)
	if err := fn(e); err != nil {
		e.abandon(depth)
		return err
	}
	if len(e.stack) != depth {
		e.abandon(depth)
		return ErrUnbalanced
	}
	return e.EndCons(tag)
}

// Explicit writes fn's single TLV inside an EXPLICIT [number] wrapper,
// discarding everything if fn fails.
func (e *Encoder) Explicit(number int, fn func(*Encoder) error) error {
	if err := e.StartExplicit(number); err != nil {
		return err
	}
	depth := len(e.stack)
	if err := fn(e); err != nil {
		e.abandon(depth)
		return err
	}
	if len(e.stack) != depth {
		e.abandon(depth)
		return ErrUnbalanced
	}
	if err := e.EndExplicit(); err != nil {
		e.abandon(depth)
		return err
	}
	return nil
}

// AddObject appends a primitive TLV whose content octets are already encoded.
func (e *Encoder) AddObject(number int, class Class, content []byte) error {
	return e.addTLV(Tag{Class: class, Number: number}, content)
}

// AddRaw appends exactly one complete, definite-length TLV.
func (e *Encoder) AddRaw(tlv []byte) error {
	dec := NewDecoder(tlv, WithStrictDER())
	obj, err := dec.GetNextObject()
	if err != nil {
		return err
	}
	if err := dec.VerifyEnd(); err != nil {
		return err
	}
	e.mark()
	e.write(obj.Raw())
	return nil
}

// Encode lets v write itself into the encoder.
func (e *Encoder) Encode(v Encodable) error {
	return v.EncodeInto(e)
}

func (e *Encoder) addTLV(tag Tag, content []byte) error {
	hdr, err := appendHeader(nil, tag, len(content))
	if err != nil {
		return err
	}
	e.mark()
	e.write(hdr)
	e.write(content)
	return nil
}

func (e *Encoder) push(tag Tag, explicit bool) error {
	if err := tag.validate(); err != nil {
		return err
	}
	e.mark()
	e.stack = append(e.stack, &scope{tag: tag, explicit: explicit})
	return nil
}

func (e *Encoder) top() (*scope, error) {
	if len(e.stack) == 0 {
		return nil, fmt.Errorf("%w: no open scope", ErrUnbalanced)
	}
	return e.stack[len(e.stack)-1], nil
}

// pop closes the top scope and writes it into its parent.
func (e *Encoder) pop() error {
	s := e.stack[len(e.stack)-1]

	content := s.buf
	if s.tag == Set && len(s.children) > 1 {
		content = sortSetContent(s)
	}

	hdr, err := appendHeader(nil, s.tag, len(content))
	if err != nil {
		return err
	}

	e.stack = e.stack[:len(e.stack)-1]
	e.write(hdr)
	e.write(content)
	return nil
}

// abandon drops every scope at or above depth without writing it out.
func (e *Encoder) abandon(depth int) {
	if depth < 1 || depth > len(e.stack) {
		return
	}
	e.stack = e.stack[:depth-1]
	// The parent recorded a child start for the dropped scope.
	if len(e.stack) > 0 {
		p := e.stack[len(e.stack)-1]
		if n := len(p.children); n > 0 && p.children[n-1] == len(p.buf) {
			p.children = p.children[:n-1]
		}
	}
}

// mark records the start of a new child TLV in the current scope.
func (e *Encoder) mark() {
	if len(e.stack) == 0 {
		return
	}
	s := e.stack[len(e.stack)-1]
	s.children = append(s.children, len(s.buf))
}

func (e *Encoder) write(p []byte) {
	if len(e.stack) == 0 {
		e.out = append(e.out, p...)
		return
	}
	s := e.stack[len(e.stack)-1]
	s.buf = append(s.buf, p...)
}

// sortSetContent orders the elements of a SET by their encodings.
func sortSetContent(s *scope) []byte {
	elems := make([][]byte, len(s.children))
	for i, start := range s.children {
		end := len(s.buf)
		if i+1 < len(s.children) {
			end = s.children[i+1]
		}
		elems[i] = s.buf[start:end]
	}
	slices.SortFunc(elems, bytes.Compare)

	out := make([]byte, 0, len(s.buf))
	for _, el := range elems {
		out = append(out, el...)
	}
	return out
}
