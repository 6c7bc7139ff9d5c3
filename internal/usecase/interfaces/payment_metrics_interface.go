package interfaces

// IPaymentMetrics receives verification and webhook outcomes for monitoring.
type IPaymentMetrics interface {
	ObserveVerification(path, outcome string)
	ObserveWebhook(outcome string)
	ObserveGatewayResolution(result string)
	ObserveAmountMismatch()
}
