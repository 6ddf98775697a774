package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/healthcamp-backend/internal/domain/errors"
	"github.com/rafabene/healthcamp-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		userRepo    *fakeUserRepo
		userService *services.UserService
		authService *services.AuthService
		ctx         context.Context
	)

	BeforeEach(func() {
		userRepo = newFakeUserRepo()
		userService = services.NewUserService(userRepo, fakeUnitOfWork{}, nopLogger{}, bcrypt.MinCost)

		var err error
		authService, err = services.NewAuthService(userRepo, nopLogger{}, "test-secret", "1h")
		Expect(err).NotTo(HaveOccurred())

		ctx = context.Background()

		_, err = userService.SignUp(ctx, services.SignUpInput{
			Username:        "drsilva",
			Email:           "drsilva@clinic.org",
			Password:        "s3cret",
			ConfirmPassword: "s3cret",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Login", func() {
		It("aceita credenciais corretas por username", func() {
			user, token, err := authService.Login(ctx, "drsilva", "s3cret")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("drsilva"))
			Expect(token).NotTo(BeEmpty())
		})

		It("aceita credenciais corretas por email", func() {
			user, _, err := authService.Login(ctx, "drsilva@clinic.org", "s3cret")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("drsilva"))
		})

		It("rejeita senha errada", func() {
			_, _, err := authService.Login(ctx, "drsilva", "wrong")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("rejeita usuário desconhecido com o mesmo erro de senha errada", func() {
			_, _, errUnknown := authService.Login(ctx, "nobody", "s3cret")
			_, _, errWrongPass := authService.Login(ctx, "drsilva", "wrong")

			// Sem vazamento: ambos os casos retornam o mesmo erro
			Expect(errUnknown).To(MatchError(errors.ErrInvalidCredentials))
			Expect(errWrongPass).To(MatchError(errors.ErrInvalidCredentials))
		})
	})

	Describe("ValidateToken", func() {
		It("resolve o id do usuário a partir de um token emitido", func() {
			user, token, err := authService.Login(ctx, "drsilva", "s3cret")
			Expect(err).NotTo(HaveOccurred())

			userID, err := authService.ValidateToken(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal(user.ID))
		})

		It("rejeita token adulterado", func() {
			_, token, err := authService.Login(ctx, "drsilva", "s3cret")
			Expect(err).NotTo(HaveOccurred())

			_, err = authService.ValidateToken(token + "x")
			Expect(err).To(MatchError(errors.ErrUnauthorized))
		})

		It("rejeita token assinado com outro segredo", func() {
			otherAuth, err := services.NewAuthService(userRepo, nopLogger{}, "other-secret", "1h")
			Expect(err).NotTo(HaveOccurred())

			_, token, err := otherAuth.Login(ctx, "drsilva", "s3cret")
			Expect(err).NotTo(HaveOccurred())

			_, err = authService.ValidateToken(token)
			Expect(err).To(MatchError(errors.ErrUnauthorized))
		})

		It("rejeita lixo", func() {
			_, err := authService.ValidateToken("not-a-jwt")
			Expect(err).To(MatchError(errors.ErrUnauthorized))
		})
	})

	Describe("NewAuthService", func() {
		It("rejeita duração de expiração inválida", func() {
			_, err := services.NewAuthService(userRepo, nopLogger{}, "secret", "bogus")
			Expect(err).To(HaveOccurred())
		})
	})
})
