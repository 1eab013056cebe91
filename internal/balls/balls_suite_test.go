package balls_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBalls(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Balls Suite")
}
