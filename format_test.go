package redpool

import (
	"errors"

	"github.com/aphistic/sweet"
	"github.com/gomodule/redigo/redis"
	. "github.com/onsi/gomega"
)

type FormatSuite struct{}

func (s *FormatSuite) TestPlain(t sweet.T) {
	command, args, err := formatCommand("PING")
	Expect(err).To(BeNil())
	Expect(command).To(Equal("PING"))
	Expect(args).To(BeEmpty())
}

func (s *FormatSuite) TestWholeWordVerbs(t sweet.T) {
	payload := []byte("a b\x00c")

	command, args, err := formatCommand("SET %s %b", "my key", payload)
	Expect(err).To(BeNil())
	Expect(command).To(Equal("SET"))
	Expect(args).To(HaveLen(2))
	Expect(args[0]).To(Equal("my key"))
	Expect(args[1]).To(Equal(payload))
}

func (s *FormatSuite) TestArgumentsPassThrough(t sweet.T) {
	_, args, err := formatCommand("INCRBY %s %d", "counter", 15)
	Expect(err).To(BeNil())
	Expect(args).To(Equal([]interface{}{"counter", 15}))
}

func (s *FormatSuite) TestEmbeddedVerbs(t sweet.T) {
	_, args, err := formatCommand("GET user:%d:%s", int64(42), "name")
	Expect(err).To(BeNil())
	Expect(args).To(Equal([]interface{}{"user:42:name"}))
}

func (s *FormatSuite) TestCommandVerb(t sweet.T) {
	command, args, err := formatCommand("%s foo", "GET")
	Expect(err).To(BeNil())
	Expect(command).To(Equal("GET"))
	Expect(args).To(Equal([]interface{}{"foo"}))
}

func (s *FormatSuite) TestWhitespace(t sweet.T) {
	command, args, err := formatCommand("  SET\t%s \n %s  ", "a", "b")
	Expect(err).To(BeNil())
	Expect(command).To(Equal("SET"))
	Expect(args).To(Equal([]interface{}{"a", "b"}))
}

func (s *FormatSuite) TestLiteralPercent(t sweet.T) {
	_, args, err := formatCommand("SET %s 100%%", "progress")
	Expect(err).To(BeNil())
	Expect(args).To(Equal([]interface{}{"progress", "100%"}))
}

func (s *FormatSuite) TestMalformed(t sweet.T) {
	templates := map[string][]interface{}{
		"":            nil,
		"   ":         nil,
		"SET %s %s":   {"key"},
		"GET %s":      {"key", "extra"},
		"GET key:%q":  {"key"},
		"SET key 50%": nil,
		"GET a:%s":    nil,
	}

	for template, args := range templates {
		_, _, err := formatCommand(template, args...)
		Expect(errors.Is(err, ErrMalformedCommand)).To(BeTrue())
	}
}

func (s *FormatSuite) TestEncodeArg(t sweet.T) {
	Expect(encodeArg("str")).To(Equal("str"))
	Expect(encodeArg([]byte("bytes"))).To(Equal("bytes"))
	Expect(encodeArg(12)).To(Equal("12"))
	Expect(encodeArg(int64(-3))).To(Equal("-3"))
	Expect(encodeArg(1.5)).To(Equal("1.5"))
	Expect(encodeArg(true)).To(Equal("1"))
	Expect(encodeArg(false)).To(Equal("0"))
	Expect(encodeArg(nil)).To(Equal(""))
	Expect(encodeArg(uint8(7))).To(Equal("7"))
	Expect(encodeArg(testArgument{"wrapped"})).To(Equal("wrapped"))
}

func (s *FormatSuite) TestArgs(t sweet.T) {
	args := Args{}.Add("key").AddFlat([]string{"a", "b"})
	Expect([]interface{}(args)).To(Equal([]interface{}{"key", "a", "b"}))
}

//
// Helpers

type testArgument struct {
	value string
}

var _ redis.Argument = testArgument{}

func (a testArgument) RedisArg() interface{} {
	return a.value
}
