package handler

import (
	"errors"
	"fmt"
	"os"
	"time"

	"studio_manager/constants"
	"studio_manager/database"
	"studio_manager/helper"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func setTokenCookies(c *fiber.Ctx, tokens model.TokenData) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(time.Hour),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    tokens.RefreshToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})
}

// Login authenticates a staff account and issues the token pair.
func Login(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginInput)

	account, err := helper.GetAccountByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil || !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Wrong username or password", nil)
	}
	if !account.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Account is disabled", nil)
	}

	claim := model.TokenClaim{AccountId: account.ID, Username: account.Username, Role: account.Role}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot sign token", err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot sign token", err)
	}

	tokens := model.TokenData{AccessToken: accessToken, RefreshToken: refreshToken}
	setTokenCookies(c, tokens)

	database.DB.Model(account).Updates(model.Account{AccessToken: accessToken, RefreshToken: refreshToken})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"tokens": tokens,
		"account": fiber.Map{
			"id":       account.ID,
			"username": account.Username,
			"role":     account.Role,
		},
	})
}

// RefreshToken exchanges a valid refresh token for a new pair.
func RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies("refresh_token")
	if refresh == "" {
		var payload struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.BodyParser(&payload); err == nil {
			refresh = payload.RefreshToken
		}
	}
	if refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", nil)
	}

	token, err := helper.ParseToken(refresh)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	claim := model.TokenClaim{Username: fmt.Sprint(claims["username"])}
	if v, ok := claims["accountId"].(float64); ok {
		claim.AccountId = uint(v)
	}
	if v, ok := claims["memberId"].(float64); ok {
		claim.MemberId = uint(v)
	}
	if v, ok := claims["role"].(string); ok {
		claim.Role = v
	}

	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot sign token", err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot sign token", err)
	}

	tokens := model.TokenData{AccessToken: accessToken, RefreshToken: refreshToken}
	setTokenCookies(c, tokens)

	return utils.SuccessResponse(c, fiber.StatusOK, tokens)
}

// RegisterMember signs up a storefront member.
func RegisterMember(c *fiber.Ctx) error {
	input := c.Locals("registerMemberInput").(model.RegisterMemberInput)

	existing, err := helper.GetMemberByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Email is already registered", nil, "email")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot hash password", err)
	}

	member := model.Member{
		UserName: input.UserName,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hash,
		IsActive: true,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create member", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, member)
}

// MemberLogin authenticates a member by email and issues the token pair.
func MemberLogin(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginInput)

	member, err := helper.GetMemberByEmail(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if member == nil || !helper.CheckPasswordHash(input.Password, member.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Wrong email or password", nil)
	}
	if !member.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Member account is disabled", nil)
	}

	claim := model.TokenClaim{MemberId: member.ID, Username: member.Email, Role: constants.ROLE_MEMBER}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot sign token", err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot sign token", err)
	}

	tokens := model.TokenData{AccessToken: accessToken, RefreshToken: refreshToken}
	setTokenCookies(c, tokens)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"tokens": tokens,
		"member": member,
	})
}

// ForgotPassword stores a reset token and mails the link. Always answers
// 200 so the endpoint cannot be used to probe registered emails.
func ForgotPassword(c *fiber.Ctx) error {
	input := c.Locals("forgotPasswordInput").(model.ForgotPasswordRequest)

	member, err := helper.GetMemberByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if member == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "If the email exists, a reset link was sent"})
	}

	token := uuid.New().String()
	reset := model.PasswordResetToken{
		MemberId:  member.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	if err := database.DB.Create(&reset).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create reset token", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("FRONTEND_URL"), token)
	if err := utils.SendPasswordResetEmail(member.Email, resetLink); err != nil {
		utils.Logger.Error().Err(err).Str("email", member.Email).Msg("send reset email")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "If the email exists, a reset link was sent"})
}

// ResetPassword consumes a reset token and stores the new hash.
func ResetPassword(c *fiber.Ctx) error {
	input := c.Locals("resetPasswordInput").(model.ResetPasswordRequest)

	var reset model.PasswordResetToken
	if err := database.DB.Where("token = ?", input.Token).First(&reset).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid reset token", errors.New("token not found"))
	}
	if time.Now().After(reset.ExpiresAt) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Reset token has expired", nil)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot hash password", err)
	}

	tx := database.DB.Begin()
	if err := tx.Model(&model.Member{}).Where("id = ?", reset.MemberId).Update("password", hash).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update password", err)
	}
	if err := tx.Delete(&reset).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot consume reset token", err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password updated"})
}
