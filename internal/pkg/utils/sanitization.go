package utils

import (
	"plantao-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		sanitizedArray = append(sanitizedArray, v)
	}
	return sanitizedArray
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.UserType = strings.ToLower(strings.TrimSpace(input.UserType))
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeForgotPasswordRequest(input *requests.ForgotPassword) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeSubmitAvailabilityRequest(input *requests.SubmitAvailability) {
	input.Dates = cleanWhiteSpaceFromEachStringOfAnArray(input.Dates)
	input.StartTime = strings.TrimSpace(input.StartTime)
	input.EndTime = strings.TrimSpace(input.EndTime)
	input.Specialties = cleanWhiteSpaceFromEachStringOfAnArray(input.Specialties)
}

func SanitizeUpdateSlotRequest(input *requests.UpdateSlot) {
	input.StartTime = strings.TrimSpace(input.StartTime)
	input.EndTime = strings.TrimSpace(input.EndTime)
	input.Specialties = cleanWhiteSpaceFromEachStringOfAnArray(input.Specialties)
}

func SanitizeCreateProposalRequest(input *requests.CreateProposal) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Location = strings.TrimSpace(input.Location)
	input.Description = strings.TrimSpace(input.Description)
	input.Requirements = strings.TrimSpace(input.Requirements)
	input.HospitalProfile.Specialties = cleanWhiteSpaceFromEachStringOfAnArray(input.HospitalProfile.Specialties)
}

func SanitizeUpdatePersonalInfoRequest(input *requests.UpdatePersonalInfo) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.CPF = onlyDigits(input.CPF)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Gender = strings.TrimSpace(input.Gender)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeUpdateProfessionalInfoRequest(input *requests.UpdateProfessionalInfo) {
	input.CRM = strings.TrimSpace(input.CRM)
	input.Graduation = strings.TrimSpace(input.Graduation)
	input.GraduationYear = strings.TrimSpace(input.GraduationYear)
	input.Specialties = cleanWhiteSpaceFromEachStringOfAnArray(input.Specialties)
	input.ServiceType = strings.TrimSpace(input.ServiceType)
	input.Experience = strings.TrimSpace(input.Experience)
	input.Bio = strings.TrimSpace(input.Bio)
}

func SanitizeUpdateFinancialInfoRequest(input *requests.UpdateFinancialInfo) {
	input.Bank = strings.TrimSpace(input.Bank)
	input.Agency = strings.TrimSpace(input.Agency)
	input.Account = strings.TrimSpace(input.Account)
	input.AccountType = strings.TrimSpace(input.AccountType)
	input.Pix = strings.TrimSpace(input.Pix)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
