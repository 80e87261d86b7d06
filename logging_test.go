package currentloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger := NewDefaultLogger(debug)
		assert.NotNil(t, logger)

		logger.Debugf("debug message (debug mode %v)", debug)
		logger.Infof("info message (debug mode %v)", debug)
	}
}
