package llm

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const advisorPersona = `You are Fingent AI, a professional financial advisor with expertise in:
- Personal finance and budgeting
- Investment strategies (stocks, bonds, crypto, ETFs)
- Retirement planning (401k, IRA, pension)
- Debt management and credit optimization
- Tax planning strategies
- Real estate investment
- Risk management and insurance

Provide clear, actionable, and responsible financial advice. Always remind users to:
- Consult with licensed professionals for major decisions
- Consider their personal financial situation
- Understand risks before investing`

const chatSystemPrompt = advisorPersona + `

Provide a concise, helpful response (2-4 sentences max).`

const voiceSystemPrompt = advisorPersona + `

You are speaking with a customer on a live phone call. Answer in at most 2 short
sentences of plain spoken English. Do not use markdown, lists, or symbols.`

const savingsSystemPrompt = `As a financial advisor, provide specific savings advice.
Give 2-3 actionable, specific recommendations in 3-4 sentences max. Be practical and realistic.`

// ChatPrompt wraps a free-text question in the chat advisor persona.
func ChatPrompt(userMessage string) Request {
	return Request{
		System:    chatSystemPrompt,
		User:      userMessage,
		MaxTokens: 1024,
	}
}

// VoicePrompt wraps recognized speech in the phone-call persona with a short
// output budget suitable for text-to-speech.
func VoicePrompt(speech string) Request {
	return Request{
		System:    voiceSystemPrompt,
		User:      speech,
		MaxTokens: 150,
	}
}

// SavingsPrompt renders the numeric advice prompt with currency figures
// formatted as $#,###.## and the savings rate to one decimal place.
func SavingsPrompt(income, expenses, savingsRate float64) Request {
	p := message.NewPrinter(language.English)
	user := p.Sprintf(`The user has:
- Monthly Income: $%.2f
- Monthly Expenses: $%.2f
- Monthly Savings: $%.2f
- Savings Rate: %s`,
		income, expenses, income-expenses, fmt.Sprintf("%.1f%%", savingsRate))

	return Request{
		System:    savingsSystemPrompt,
		User:      user,
		MaxTokens: 512,
	}
}
