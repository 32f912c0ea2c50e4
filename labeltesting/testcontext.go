package labeltesting

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-meshlabel/label"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    *testing.T
}

type TestConfig struct {
	// We seed the RNG of the provided StartTimeMS. It is normal to force it to
	// some fixed value so that the generated labels are the same from run to
	// run.
	StartTimeMS     int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.StartTimeMS)),
	}
	logger.New("NOOP")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// OneHop returns the one hop label carrying value in the given form.
func (c *TestContext) OneHop(s label.Scheme, form int, value uint64) label.Label {
	l, err := label.EncodeDirector(1, label.Director{Form: form, Value: value}, s)
	require.NoError(c.T, err)
	return l
}

// RandomDirector returns a random director value that fits form. For v358
// form 0 the self route, 0, is never returned.
func (c *TestContext) RandomDirector(s label.Scheme, form int) uint64 {
	bitCount := s.Form(form).BitCount
	for {
		v := c.Rand.Uint64() & (uint64(1)<<bitCount - 1)
		if s.Name() == label.V358.Name() && form == 0 && v == 0 {
			continue
		}
		return v
	}
}

// RandomOneHop returns a one hop label in a randomly chosen form of s.
func (c *TestContext) RandomOneHop(s label.Scheme) (label.Label, label.Director) {
	d := label.Director{Form: c.Rand.Intn(s.Len())}
	d.Value = c.RandomDirector(s, d.Form)
	return c.OneHop(s, d.Form, d.Value), d
}

// RandomPath returns hops one hop labels under s with no LabelP, nearest hop
// first. Keys are "node-<i>".
func (c *TestContext) RandomPath(s label.Scheme, hops int) []label.PathHop {
	path := make([]label.PathHop, 0, hops)
	for i := 0; i < hops; i++ {
		l, _ := c.RandomOneHop(s)
		path = append(path, label.PathHop{
			Key:    "node-" + strconv.Itoa(i),
			Scheme: s,
			LabelN: l.String(),
		})
	}
	return path
}
