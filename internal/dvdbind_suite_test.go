package dvdbind

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDVDBind(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "DVD Binding Suite")
}
