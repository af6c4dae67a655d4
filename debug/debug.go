// Package debug provides assertions and an opt-in debug log, both configured
// through environment variables so that they may be enabled without changing
// the calling program.
package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	envEnableAssert = "LINEEDIT_ENABLE_ASSERT"
)

var (
	enableAssert bool
	assertOutput io.Writer = os.Stderr
)

func init() {
	loadAssertEnv()
	loadLoggerEnv()
}

func loadAssertEnv() {
	enableAssert = envTrue(envEnableAssert)
}

func envTrue(name string) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// Assert reports msg if cond is false. It panics instead when assertions are
// enabled via LINEEDIT_ENABLE_ASSERT.
func Assert(cond bool, msg any) {
	if cond {
		return
	}
	s := toString(msg)
	if enableAssert {
		panic(s)
	}
	_, _ = io.WriteString(assertOutput, "[ASSERT] "+s+"\n")
	logger.Crit().Str("assert", s).Log("assertion failed")
}

// AssertNoError reports err if it is not nil, see also Assert.
func AssertNoError(err error) {
	if err == nil {
		return
	}
	if enableAssert {
		panic(err)
	}
	_, _ = io.WriteString(assertOutput, "[ASSERT] "+err.Error()+"\n")
	logger.Crit().Err(err).Log("unexpected error")
}

func toString(v any) string {
	switch a := v.(type) {
	case func() string:
		return a()
	case string:
		return a
	case fmt.Stringer:
		return a.String()
	default:
		return fmt.Sprintf("unexpected type %T: %v", v, v)
	}
}
