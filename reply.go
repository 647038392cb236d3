package redpool

import "fmt"

type (
	// RawReply is a single decoded reply from the remote Redis server.
	// Value holds one of the types produced by redigo: string (status),
	// int64 (integer), []byte (bulk), nil (nil bulk), []interface{}
	// (array), or redis.Error (error reply).
	RawReply struct {
		Value interface{}
	}

	// FreeFunc releases the resources held by a raw reply. A reply
	// handle invokes it at most once per raw reply.
	FreeFunc func(raw *RawReply)

	// Reply is the sole owner of a raw reply. Ownership can be moved
	// to another handle with Assign or taken out with Release; the
	// handle which owns the raw reply when Close is called frees it.
	// A Reply must not be used from multiple goroutines at once.
	Reply struct {
		raw  *RawReply
		free FreeFunc
	}

	// ReplyKind identifies the variant of a reply.
	ReplyKind int
)

const (
	KindNil ReplyKind = iota
	KindStatus
	KindInteger
	KindBulk
	KindArray
	KindError
	KindUnknown
)

var kindNames = map[ReplyKind]string{
	KindNil:     "nil",
	KindStatus:  "status",
	KindInteger: "integer",
	KindBulk:    "bulk",
	KindArray:   "array",
	KindError:   "error",
	KindUnknown: "unknown",
}

func (k ReplyKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[KindUnknown]
}

// WrapReply creates a handle which owns the given raw reply. The free
// function may be nil.
func WrapReply(raw *RawReply, free FreeFunc) *Reply {
	return &Reply{raw: raw, free: free}
}

// Release relinquishes ownership of the raw reply without freeing it.
// The handle is empty afterwards and the caller becomes responsible
// for the returned value (e.g. by wrapping it again).
func (r *Reply) Release() *RawReply {
	raw := r.raw
	r.raw = nil
	r.free = nil
	return raw
}

// Assign frees the reply currently owned by this handle and moves the
// reply owned by other into it, leaving other empty. Assigning a handle
// to itself does nothing. A nil other is treated as an empty handle.
func (r *Reply) Assign(other *Reply) {
	if r == other {
		return
	}

	if other == nil {
		r.Close()
		return
	}

	free := other.free
	raw := other.Release()

	r.Close()
	r.raw = raw
	r.free = free
}

// Reset frees the reply currently owned by this handle and takes
// ownership of raw. Resetting to the raw reply already owned does
// nothing.
func (r *Reply) Reset(raw *RawReply, free FreeFunc) {
	if raw != nil && r.raw == raw {
		return
	}

	r.Close()
	r.raw = raw
	r.free = free
}

// Present returns true if the handle owns a reply.
func (r *Reply) Present() bool {
	return r != nil && r.raw != nil
}

// Close frees the owned reply, if any. It is safe to call Close more
// than once and on a handle whose reply has been moved elsewhere.
func (r *Reply) Close() {
	if r == nil || r.raw == nil {
		return
	}

	raw, free := r.raw, r.free
	r.raw = nil
	r.free = nil

	if free != nil {
		free(raw)
	}
}

// Kind returns the variant of the owned reply.
func (r *Reply) Kind() ReplyKind {
	switch r.get().Value.(type) {
	case nil:
		return KindNil
	case string:
		return KindStatus
	case int64:
		return KindInteger
	case []byte:
		return KindBulk
	case []interface{}:
		return KindArray
	case error:
		return KindError
	}

	return KindUnknown
}

// Value returns the owned reply's value as decoded by redigo.
func (r *Reply) Value() interface{} {
	return r.get().Value
}

// IsNil returns true if the owned reply is a nil bulk or nil array.
func (r *Reply) IsNil() bool {
	return r.Kind() == KindNil
}

// Status returns the text of a status reply.
func (r *Reply) Status() (string, error) {
	if value, ok := r.get().Value.(string); ok {
		return value, nil
	}

	return "", r.mismatch(KindStatus)
}

// Integer returns the value of an integer reply.
func (r *Reply) Integer() (int64, error) {
	if value, ok := r.get().Value.(int64); ok {
		return value, nil
	}

	return 0, r.mismatch(KindInteger)
}

// Bytes returns the payload of a bulk reply.
func (r *Reply) Bytes() ([]byte, error) {
	if value, ok := r.get().Value.([]byte); ok {
		return value, nil
	}

	return nil, r.mismatch(KindBulk)
}

// Text returns the payload of a bulk reply as a string.
func (r *Reply) Text() (string, error) {
	value, err := r.Bytes()
	if err != nil {
		return "", err
	}

	return string(value), nil
}

// Elements returns the items of an array reply. The items are owned by
// this reply and are only meaningful while the handle owns it.
func (r *Reply) Elements() ([]interface{}, error) {
	if value, ok := r.get().Value.([]interface{}); ok {
		return value, nil
	}

	return nil, r.mismatch(KindArray)
}

// Err returns the error carried by an error reply, or nil for every
// other reply variant.
func (r *Reply) Err() error {
	if err, ok := r.get().Value.(error); ok {
		return err
	}

	return nil
}

func (r *Reply) get() *RawReply {
	if !r.Present() {
		panic(ErrUseAfterRelease)
	}

	return r.raw
}

func (r *Reply) mismatch(expected ReplyKind) error {
	kind := r.Kind()

	if kind == KindError {
		return fmt.Errorf("%w: expected %s reply, got error (%s)", ErrProtocolViolation, expected, r.Err())
	}

	return fmt.Errorf("%w: expected %s reply, got %s", ErrProtocolViolation, expected, kind)
}
