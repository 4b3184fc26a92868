package validator

import (
	"rezzy-api/core/controller"
	"rezzy-api/modules/auth/dto"

	playground "github.com/go-playground/validator/v10"
)

var validate = playground.New()

// ValidateRegisterRequest checks the registration payload.
func ValidateRegisterRequest(req *dto.RegisterRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{Success: true, Message: "Validation passed"}

	if err := validate.Struct(req); err != nil {
		if validationErrors, ok := err.(playground.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				switch fieldErr.StructField() {
				case "Email":
					result.AddError("email", "A valid email is required")
				case "Password":
					result.AddError("password", "Password must be at least 8 characters")
				case "Name":
					result.AddError("name", "Name cannot be empty")
				}
			}
		} else {
			result.AddError("request", "Invalid request data")
		}
	}

	if result.HasError() {
		result.Message = "Validation failed"
	}
	return result
}

// ValidateLoginRequest checks the login payload.
func ValidateLoginRequest(req *dto.LoginRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{Success: true, Message: "Validation passed"}

	if err := validate.Struct(req); err != nil {
		if validationErrors, ok := err.(playground.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				switch fieldErr.StructField() {
				case "Email":
					result.AddError("email", "A valid email is required")
				case "Password":
					result.AddError("password", "Password is required")
				}
			}
		} else {
			result.AddError("request", "Invalid request data")
		}
	}

	if result.HasError() {
		result.Message = "Validation failed"
	}
	return result
}

// ValidateWhitelistRequest checks a whitelist add payload.
func ValidateWhitelistRequest(req *dto.WhitelistRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{Success: true, Message: "Validation passed"}

	if err := validate.Struct(req); err != nil {
		result.AddError("email", "A valid email is required")
		result.Message = "Validation failed"
	}
	return result
}
