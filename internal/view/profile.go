package view

import (
	"errors"
	"strings"

	"github.com/restyle-next/internal/authz"
	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/constants"
	"github.com/restyle-next/internal/models"
)

// Profile 资料页视图模型
type Profile struct {
	Title           string        `json:"title"`
	Username        string        `json:"username"`
	Email           string        `json:"email"`
	Role            string        `json:"role"`
	ProfilePic      string        `json:"profile_pic"`
	ShowProductList bool          `json:"show_product_list"`
	Products        []ProductCard `json:"products,omitempty"`
}

// BuildProfile 构建资料页视图
func BuildProfile(identity models.Identity, products []ProductCard, visibility *authz.Service) Profile {
	role := strings.ToLower(identity.Role)
	profile := Profile{
		Title:      ProfileTitleForRole(role),
		Username:   identity.Username,
		Email:      identity.Email,
		Role:       role,
		ProfilePic: identity.ProfilePic,
	}
	if visibility != nil && visibility.CanSee(role, constants.AffordanceSellerProducts) {
		profile.ShowProductList = true
		profile.Products = products
	}
	return profile
}

// ProfileTitleForRole 资料页标题按角色区分
func ProfileTitleForRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case constants.RoleSeller:
		return constants.ProfileTitleSeller
	case constants.RoleAdmin:
		return constants.ProfileTitleAdmin
	default:
		return constants.ProfileTitleBuyer
	}
}

// ProfileUpdateForm 资料更新表单
type ProfileUpdateForm struct {
	Username        string `json:"username"`
	ProfilePic      string `json:"profile_pic"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// 表单校验失败文案内联展示，不清空表单内容
var (
	ErrUsernameNeedsPassword = errors.New("Current password is required to change username.")
	ErrPasswordsMismatch     = errors.New("New passwords do not match.")
	ErrPasswordNeedsCurrent  = errors.New("Current password is required to change password.")
	ErrNoChanges             = errors.New("No changes to update.")
)

// ValidateProfileUpdate 校验资料更新表单并生成只含变更字段的请求体
// 校验失败属于 ValidationFailed：调用方保留表单内容供用户修正
func ValidateProfileUpdate(current models.Identity, form ProfileUpdateForm) (backend.ProfileUpdateInput, error) {
	input := backend.ProfileUpdateInput{}

	if form.ProfilePic != "" && form.ProfilePic != current.ProfilePic {
		input.ProfilePic = form.ProfilePic
	}

	if form.Username != "" && form.Username != current.Username {
		if form.CurrentPassword == "" {
			return backend.ProfileUpdateInput{}, ErrUsernameNeedsPassword
		}
		input.Username = form.Username
	}

	if form.NewPassword != "" {
		if form.NewPassword != form.ConfirmPassword {
			return backend.ProfileUpdateInput{}, ErrPasswordsMismatch
		}
		if form.CurrentPassword == "" {
			return backend.ProfileUpdateInput{}, ErrPasswordNeedsCurrent
		}
		input.NewPassword = form.NewPassword
	}

	if form.CurrentPassword != "" {
		input.CurrentPassword = form.CurrentPassword
	}

	if input == (backend.ProfileUpdateInput{}) {
		return backend.ProfileUpdateInput{}, ErrNoChanges
	}
	return input, nil
}
