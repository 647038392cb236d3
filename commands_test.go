package redpool

import (
	"errors"

	"github.com/aphistic/sweet"
	. "github.com/efritz/go-mockgen/matchers"
	"github.com/gomodule/redigo/redis"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/efritz/redpool/mocks"
)

type CommandsSuite struct{}

func (s *CommandsSuite) TestSet(t sweet.T) {
	c, conn, frees := makeCommandClient()
	conn.DoFunc.SetDefaultReturn("OK", nil)

	status, err := c.Set("foo", "bar baz")
	Expect(err).To(BeNil())
	Expect(status).To(Equal("OK"))
	Expect(conn.DoFunc.History()[0].Args()).To(Equal([]interface{}{"SET", "foo", "bar baz"}))
	Expect(*frees).To(Equal(1))
	Expect(testutil.ToFloat64(c.metrics.repliesOutstanding)).To(Equal(float64(0)))
}

func (s *CommandsSuite) TestSetUnexpectedReply(t sweet.T) {
	c, conn, frees := makeCommandClient()
	conn.DoFunc.SetDefaultReturn(int64(1), nil)

	_, err := c.Set("foo", "bar")
	Expect(errors.Is(err, ErrProtocolViolation)).To(BeTrue())
	Expect(*frees).To(Equal(1))
}

func (s *CommandsSuite) TestSetServerError(t sweet.T) {
	c, conn, frees := makeCommandClient()
	conn.DoFunc.SetDefaultReturn(nil, redis.Error("READONLY You can't write against a read only replica."))

	_, err := c.Set("foo", "bar")
	Expect(errors.Is(err, ErrProtocolViolation)).To(BeTrue())
	Expect(err.Error()).To(ContainSubstring("READONLY"))
	Expect(*frees).To(Equal(1))
	Expect(conn.CloseFunc).NotTo(BeCalled())
}

func (s *CommandsSuite) TestSetConnectionError(t sweet.T) {
	c, conn, frees := makeCommandClient()
	conn.DoFunc.SetDefaultReturn(nil, errors.New("broken pipe"))

	_, err := c.Set("foo", "bar")
	Expect(errors.Is(err, ErrConnection)).To(BeTrue())
	Expect(*frees).To(Equal(0))
	Expect(conn.CloseFunc).To(BeCalledOnce())
}

func (s *CommandsSuite) TestGet(t sweet.T) {
	c, conn, frees := makeCommandClient()
	conn.DoFunc.SetDefaultReturn([]byte("bar"), nil)

	value, err := c.Get("foo")
	Expect(err).To(BeNil())
	Expect(value).To(Equal("bar"))
	Expect(conn.DoFunc.History()[0].Args()).To(Equal([]interface{}{"GET", "foo"}))
	Expect(*frees).To(Equal(1))
}

func (s *CommandsSuite) TestGetMissing(t sweet.T) {
	c, conn, frees := makeCommandClient()
	conn.DoFunc.SetDefaultReturn(nil, nil)

	value, err := c.Get("foo")
	Expect(err).To(BeNil())
	Expect(value).To(Equal(""))
	Expect(*frees).To(Equal(1))
}

func (s *CommandsSuite) TestGetUnexpectedReply(t sweet.T) {
	c, conn, frees := makeCommandClient()
	conn.DoFunc.SetDefaultReturn(int64(12), nil)

	_, err := c.Get("foo")
	Expect(errors.Is(err, ErrProtocolViolation)).To(BeTrue())
	Expect(*frees).To(Equal(1))
}

func (s *CommandsSuite) TestLookup(t sweet.T) {
	c, conn, _ := makeCommandClient()
	conn.DoFunc.PushReturn(nil, nil)
	conn.DoFunc.PushReturn([]byte{}, nil)
	conn.DoFunc.PushReturn([]byte("bar"), nil)

	value, ok, err := c.Lookup("foo")
	Expect(err).To(BeNil())
	Expect(ok).To(BeFalse())
	Expect(value).To(Equal(""))

	value, ok, err = c.Lookup("foo")
	Expect(err).To(BeNil())
	Expect(ok).To(BeTrue())
	Expect(value).To(Equal(""))

	value, ok, err = c.Lookup("foo")
	Expect(err).To(BeNil())
	Expect(ok).To(BeTrue())
	Expect(value).To(Equal("bar"))
}

func (s *CommandsSuite) TestIncr(t sweet.T) {
	c, conn, frees := makeCommandClient()
	conn.DoFunc.SetDefaultReturn(int64(42), nil)

	value, err := c.Incr("counter")
	Expect(err).To(BeNil())
	Expect(value).To(Equal(int64(42)))
	Expect(conn.DoFunc.History()[0].Args()).To(Equal([]interface{}{"INCR", "counter"}))
	Expect(*frees).To(Equal(1))
}

func (s *CommandsSuite) TestIncrNotAnInteger(t sweet.T) {
	c, conn, frees := makeCommandClient()
	conn.DoFunc.SetDefaultReturn(nil, redis.Error("ERR value is not an integer or out of range"))

	_, err := c.Incr("counter")
	Expect(errors.Is(err, ErrProtocolViolation)).To(BeTrue())
	Expect(err.Error()).To(ContainSubstring("not an integer"))
	Expect(*frees).To(Equal(1))
}

func (s *CommandsSuite) TestIncrUnexpectedReply(t sweet.T) {
	c, conn, frees := makeCommandClient()
	conn.DoFunc.SetDefaultReturn([]byte("42"), nil)

	_, err := c.Incr("counter")
	Expect(errors.Is(err, ErrProtocolViolation)).To(BeTrue())
	Expect(*frees).To(Equal(1))
}

func (s *CommandsSuite) TestIncrNoConnection(t sweet.T) {
	var (
		pool = mocks.NewMockPool()
		c    = makeClient(pool)
	)

	pool.BorrowFunc.SetDefaultReturn(nil, ErrPoolClosed)

	_, err := c.Incr("counter")
	Expect(err).To(Equal(ErrPoolClosed))
}

func (s *CommandsSuite) TestKeysAreSingleArguments(t sweet.T) {
	c, conn, _ := makeCommandClient()
	conn.DoFunc.SetDefaultReturn("OK", nil)

	_, err := c.Set("key with spaces", "100% value")
	Expect(err).To(BeNil())
	Expect(conn.DoFunc.History()[0].Args()).To(Equal([]interface{}{"SET", "key with spaces", "100% value"}))
}

//
// Helpers

func makeCommandClient() (*client, *mocks.MockConn, *int) {
	var (
		pool  = mocks.NewMockPool()
		conn  = mocks.NewMockConn()
		frees = 0
		c     = makeClient(pool)
	)

	pool.BorrowFunc.SetDefaultReturn(conn, nil)
	c.replyObserver = func(raw *RawReply) { frees++ }
	return c, conn, &frees
}
