package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/healthcamp-backend/internal/domain/errors"
	"github.com/rafabene/healthcamp-backend/internal/services"
)

var _ = Describe("UserService", func() {
	var (
		userRepo *fakeUserRepo
		service  *services.UserService
		ctx      context.Context
	)

	BeforeEach(func() {
		userRepo = newFakeUserRepo()
		service = services.NewUserService(userRepo, fakeUnitOfWork{}, nopLogger{}, bcrypt.MinCost)
		ctx = context.Background()
	})

	validInput := func() services.SignUpInput {
		return services.SignUpInput{
			Username:        "drsilva",
			Email:           "drsilva@clinic.org",
			Password:        "s3cret",
			ConfirmPassword: "s3cret",
		}
	}

	Describe("SignUp", func() {
		It("cria a conta com a senha armazenada como hash bcrypt", func() {
			user, err := service.SignUp(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeZero())
			Expect(user.Username).To(Equal("drsilva"))
			Expect(user.Email.String()).To(Equal("drsilva@clinic.org"))

			Expect(user.PasswordHash).NotTo(Equal("s3cret"))
			Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret"))).To(Succeed())
		})

		It("rejeita username com menos de 3 caracteres sem inserir nada", func() {
			input := validInput()
			input.Username = "ab"

			_, err := service.SignUp(ctx, input)
			Expect(errors.IsValidation(err)).To(BeTrue())
			Expect(userRepo.users).To(BeEmpty())
		})

		It("rejeita email sem '@' ou sem '.'", func() {
			input := validInput()
			input.Email = "not-an-email"

			_, err := service.SignUp(ctx, input)
			Expect(errors.IsValidation(err)).To(BeTrue())
			Expect(userRepo.users).To(BeEmpty())
		})

		It("rejeita senha com menos de 4 caracteres", func() {
			input := validInput()
			input.Password = "123"
			input.ConfirmPassword = "123"

			_, err := service.SignUp(ctx, input)
			Expect(errors.IsValidation(err)).To(BeTrue())
			Expect(userRepo.users).To(BeEmpty())
		})

		It("rejeita confirmação de senha divergente", func() {
			input := validInput()
			input.ConfirmPassword = "other"

			_, err := service.SignUp(ctx, input)
			Expect(errors.IsValidation(err)).To(BeTrue())
			Expect(userRepo.users).To(BeEmpty())
		})

		It("rejeita username já em uso", func() {
			_, err := service.SignUp(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			input := validInput()
			input.Email = "other@clinic.org"

			_, err = service.SignUp(ctx, input)
			Expect(err).To(MatchError(errors.ErrUsernameAlreadyExists))
			Expect(userRepo.users).To(HaveLen(1))
		})

		It("rejeita email já cadastrado", func() {
			_, err := service.SignUp(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			input := validInput()
			input.Username = "drsantos"

			_, err = service.SignUp(ctx, input)
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
			Expect(userRepo.users).To(HaveLen(1))
		})

		It("normaliza o email para minúsculas", func() {
			input := validInput()
			input.Email = "DrSilva@Clinic.ORG"

			user, err := service.SignUp(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email.String()).To(Equal("drsilva@clinic.org"))
		})
	})

	Describe("ListUsers", func() {
		It("retorna as contas mais recentes primeiro", func() {
			for _, name := range []string{"user-aaa", "user-bbb", "user-ccc"} {
				input := validInput()
				input.Username = name
				input.Email = name + "@clinic.org"
				_, err := service.SignUp(ctx, input)
				Expect(err).NotTo(HaveOccurred())
			}

			users, err := service.ListUsers(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(3))
			Expect(users[0].Username).To(Equal("user-ccc"))
			Expect(users[2].Username).To(Equal("user-aaa"))
		})
	})
})
