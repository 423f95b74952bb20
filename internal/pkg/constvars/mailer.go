package constvars

const (
	EmailForgotPasswordSubjectMessage = "[PLANTAO] Redefinição de senha"
	EmailShiftReminderSubjectMessage  = "[PLANTAO] Lembrete de plantão"
	EmailContractSignedSubjectMessage = "[PLANTAO] Contrato assinado"
)

const (
	EmailBodyResetPassword  = "Olá %s, use este link para redefinir sua senha: %s (válido até %s)"
	EmailBodyShiftReminder  = "Olá %s, você tem um plantão em %s no dia %s às %s (%s)."
	EmailBodyContractSigned = "O contrato para o plantão de %s no dia %s às %s foi assinado."
)

const (
	NotificationTypeEmail          = "email"
	NotificationTypeShiftReminder  = "shift_reminder"
	NotificationTypeContractSigned = "contract_signed"
)
