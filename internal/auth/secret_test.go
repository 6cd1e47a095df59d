package auth_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/asset-tracker/internal/auth"
)

func TestSecretVerifier(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "SecretVerifier Suite")
}

var _ = Describe("SecretVerifier", func() {
	var logger *slog.Logger

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	})

	Context("with a plaintext secret", func() {
		It("accepts the exact secret", func() {
			v := auth.NewSecretVerifier("super-secret-value", logger)
			Expect(v.Verify("super-secret-value")).To(BeTrue())
		})

		It("rejects a wrong secret", func() {
			v := auth.NewSecretVerifier("super-secret-value", logger)
			Expect(v.Verify("super-secret-valuX")).To(BeFalse())
		})

		It("rejects an empty secret", func() {
			v := auth.NewSecretVerifier("super-secret-value", logger)
			Expect(v.Verify("")).To(BeFalse())
		})
	})

	Context("with a bcrypt hashed secret", func() {
		It("accepts the matching plaintext", func() {
			hash, err := bcrypt.GenerateFromPassword([]byte("super-secret-value"), bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())

			v := auth.NewSecretVerifier(string(hash), logger)
			Expect(v.Verify("super-secret-value")).To(BeTrue())
		})

		It("rejects a wrong plaintext", func() {
			hash, err := bcrypt.GenerateFromPassword([]byte("super-secret-value"), bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())

			v := auth.NewSecretVerifier(string(hash), logger)
			Expect(v.Verify("other-value")).To(BeFalse())
		})
	})

	Context("with no configured secret", func() {
		It("rejects everything", func() {
			v := auth.NewSecretVerifier("", logger)
			Expect(v.Verify("anything")).To(BeFalse())
		})
	})
})
