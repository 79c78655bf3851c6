package validate

import (
	"studio_manager/model"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return body[model.LoginInput]("loginInput")
}

func CreateAccount() fiber.Handler {
	return body[model.CreateAccountInput]("createAccountInput")
}

func AdminChangePassword() fiber.Handler {
	return body[model.AdminChangePassword]("adminChangePasswordInput")
}

func RegisterMember() fiber.Handler {
	return body[model.RegisterMemberInput]("registerMemberInput")
}

func MemberChangePassword() fiber.Handler {
	return body[model.MemberChangePassword]("memberChangePasswordInput")
}

func CreateTeacher() fiber.Handler {
	return body[model.CreateTeacherInput]("createTeacherInput")
}

func UpdateTeacher() fiber.Handler {
	return body[model.UpdateTeacherInput]("updateTeacherInput")
}

func ForgotPassword() fiber.Handler {
	return body[model.ForgotPasswordRequest]("forgotPasswordInput")
}

func ResetPassword() fiber.Handler {
	return body[model.ResetPasswordRequest]("resetPasswordInput")
}
