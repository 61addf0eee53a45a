package topics

const (
	// Palpites
	PredictionsRecorded = "predictions_recorded"

	// Redis Pub/Sub: sinal de mudança no log de palpites
	PredictionsBroadcast = "predictions_broadcast"
)
