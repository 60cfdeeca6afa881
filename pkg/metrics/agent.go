package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of answering a store question end to end (LLM or fallback path)
	QuestionAnswerLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "agent_question_answer_latency_seconds",
		Help:    "Latency of the question answering agent",
		Buckets: prometheus.DefBuckets,
	})

	// Total questions answered
	QuestionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "agent_questions_total",
		Help: "Total number of questions answered",
	})

	// How many answers came from the rule-based fallback instead of the LLM
	FallbackAnswersTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "agent_fallback_answers_total",
		Help: "Total number of answers served by the rule-based fallback",
	})

	// Stores connected since process start
	StoresConnectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stores_connected_total",
		Help: "Total number of stores connected",
	})
)

func Init() {
	prometheus.MustRegister(
		QuestionAnswerLatency,
		QuestionsTotal,
		FallbackAnswersTotal,
		StoresConnectedTotal,
	)
}
