package display_test

import (
	"context"
	"strings"
	"testing"

	"pushbridge/internal/infra/display"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestDisplay(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Display Suite")
}

var _ = ginkgo.Describe("TerminalAlerter", func() {
	ginkgo.When("alerting", func() {
		ginkgo.It("should write the message followed by a newline", func() {
			var sb strings.Builder
			alerter := display.NewTerminalAlerter(&sb)

			err := alerter.Alert(context.Background(), "token registered successfully")

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(sb.String()).To(gomega.Equal("token registered successfully\n"))
		})
	})
})
