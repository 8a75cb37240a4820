package locale

import (
	"github.com/fintrip-ai/assistant-platform/internal/model"
)

// Suggestion is one curated example query. TripRelevant entries are surfaced
// first by the suggestion generator when an active trip is known.
type Suggestion struct {
	Text         string
	TripRelevant bool
}

// English must cover every key; other languages may be partial and fall back
// per missing key.
var catalogStrings = map[model.LanguageCode]map[string]string{
	model.LangEnglish: {
		"greeting":      "Hello! I'm your assistant. Ask me anything about your money or your trip.",
		"unknown":       "I didn't quite get that. Here are a few things you can ask me:",
		"error.generic": "Something went wrong on our side. Please try again in a moment.",

		"help.finance": "I can summarize your spending, check your balance, track your budget and export reports.",
		"help.travel":  "I can help with packing lists, destination tips, daily costs and your trip budget.",

		"finance.spending_summary":       "You spent {total} {period}.",
		"finance.spending_summary_empty": "I found no expenses {period}.",
		"finance.balance":                "Your current balance is {balance}.",
		"finance.budget_status":          "You've used {spent} of your {budget} monthly budget.",
		"finance.transactions":           "Here are your transactions {period}.",
		"finance.export":                 "Pick a report below and I'll prepare the file for you.",
		"finance.savings":                "A simple rule of thumb: set aside 20% of your income before spending anything else.",

		"travel.packing.cold":    "{destination} calls for warm layers: a waterproof jacket, thermal underwear, gloves and sturdy boots.",
		"travel.packing.warm":    "{destination} is warm this time of year: pack light clothing, sunscreen, a hat and comfortable sandals.",
		"travel.packing.generic": "For {destination}, pack versatile layers, comfortable shoes and a rain jacket just in case.",
		"travel.packing.ask":     "Where are you travelling to? Tell me the destination and I'll draft a packing list.",
		"travel.destination":     "{destination} is a great pick. Want tips on costs, packing or a day-by-day plan?",
		"travel.destination.ask": "Which destination would you like to know more about?",
		"travel.budget":          "Your trip budget is {budget}.",
		"travel.budget.ask":      "You haven't set a trip budget yet. What ceiling should I plan with?",
		"travel.local_costs":     "In {destination}, plan for roughly {daily} per day for food and local transport.",
		"travel.local_costs.ask": "Which destination should I estimate daily costs for?",
		"travel.itinerary":       "Day one: settle in and wander the center of {destination}. Day two: the big sights. Day three: a day trip nearby.",
		"travel.itinerary.ask":   "Tell me your destination and I'll sketch an itinerary.",

		"period.this_month": "this month",
		"period.last_month": "last month",
		"period.today":      "today",
		"period.overall":    "overall",

		"qa.see_details":   "See details",
		"qa.export_report": "Export report",
		"qa.check_balance": "Check balance",
		"qa.budget_status": "Budget status",
		"qa.packing_list":  "Packing list",
		"qa.local_costs":   "Daily costs",
		"qa.trip_budget":   "Trip budget",
		"qa.itinerary":     "Itinerary",
	},
	model.LangSpanish: {
		"greeting":      "¡Hola! Soy tu asistente. Pregúntame lo que quieras sobre tu dinero o tu viaje.",
		"unknown":       "No te he entendido bien. Aquí tienes algunas cosas que puedes preguntarme:",
		"error.generic": "Algo ha fallado por nuestra parte. Inténtalo de nuevo en un momento.",

		"help.finance": "Puedo resumir tus gastos, consultar tu saldo, seguir tu presupuesto y exportar informes.",

		"finance.spending_summary":       "Gastaste {total} {period}.",
		"finance.spending_summary_empty": "No encontré gastos {period}.",
		"finance.balance":                "Tu saldo actual es {balance}.",
		"finance.transactions":           "Aquí están tus transacciones {period}.",

		"travel.packing.cold":    "{destination} pide ropa de abrigo: chaqueta impermeable, ropa térmica, guantes y botas resistentes.",
		"travel.packing.warm":    "{destination} es cálido en esta época: lleva ropa ligera, protector solar, un sombrero y sandalias cómodas.",
		"travel.packing.generic": "Para {destination}, lleva capas versátiles, calzado cómodo y un chubasquero por si acaso.",

		"period.this_month": "este mes",
		"period.last_month": "el mes pasado",
		"period.today":      "hoy",
		"period.overall":    "en total",

		"qa.see_details":   "Ver detalles",
		"qa.export_report": "Exportar informe",
		"qa.check_balance": "Consultar saldo",
	},
	model.LangFrench: {
		"greeting":      "Bonjour ! Je suis votre assistant. Posez-moi vos questions d'argent ou de voyage.",
		"unknown":       "Je n'ai pas bien compris. Voici quelques questions que vous pouvez me poser :",
		"error.generic": "Une erreur est survenue de notre côté. Réessayez dans un instant.",

		"finance.spending_summary": "Vous avez dépensé {total} {period}.",
		"finance.balance":          "Votre solde actuel est de {balance}.",

		"period.this_month": "ce mois-ci",
		"period.last_month": "le mois dernier",
		"period.today":      "aujourd'hui",
		"period.overall":    "au total",
	},
	model.LangGreek: {
		"greeting":      "Γεια σας! Είμαι ο βοηθός σας. Ρωτήστε με για τα οικονομικά ή το ταξίδι σας.",
		"unknown":       "Δεν σας κατάλαβα. Μπορείτε να με ρωτήσετε για παράδειγμα:",
		"error.generic": "Κάτι πήγε στραβά. Δοκιμάστε ξανά σε λίγο.",

		"finance.spending_summary": "Ξοδέψατε {total} {period}.",

		"period.this_month": "αυτόν τον μήνα",
		"period.last_month": "τον περασμένο μήνα",
		"period.today":      "σήμερα",
		"period.overall":    "συνολικά",
	},
}

// Token-level synonym canonicalization per language. Non-English tokens map
// onto the English canonical form so the English rule tables apply after
// normalization.
var catalogSynonyms = map[model.LanguageCode]map[string]string{
	model.LangEnglish: {
		"spent":        "spend",
		"spending":     "spend",
		"expense":      "spend",
		"expenses":     "spend",
		"hi":           "hello",
		"hey":          "hello",
		"howdy":        "hello",
		"packing":      "pack",
		"bring":        "pack",
		"wear":         "pack",
		"transactions": "transaction",
		"payments":     "transaction",
		"purchases":    "transaction",
		"funds":        "balance",
		"pricey":       "expensive",
		"costs":        "cost",
		"prices":       "price",
		"savings":      "save",
		"saving":       "save",
	},
	model.LangSpanish: {
		"gasté":         "spend",
		"gaste":         "spend",
		"gastos":        "spend",
		"gastado":       "spend",
		"hola":          "hello",
		"saldo":         "balance",
		"presupuesto":   "budget",
		"empacar":       "pack",
		"maleta":        "pack",
		"transacciones": "transaction",
		"movimientos":   "transaction",
		"informe":       "report",
		"exportar":      "export",
		"ahorrar":       "save",
		"caro":          "expensive",
		"cara":          "expensive",
		"destino":       "destination",
		"itinerario":    "itinerary",
	},
	model.LangFrench: {
		"dépensé":      "spend",
		"dépenses":     "spend",
		"bonjour":      "hello",
		"salut":        "hello",
		"solde":        "balance",
		"budget":       "budget",
		"valise":       "pack",
		"transactions": "transaction",
		"rapport":      "report",
		"exporter":     "export",
		"économiser":   "save",
		"cher":         "expensive",
		"chère":        "expensive",
		"itinéraire":   "itinerary",
	},
	model.LangGreek: {
		"ξόδεψα":         "spend",
		"έξοδα":          "spend",
		"γεια":           "hello",
		"υπόλοιπο":       "balance",
		"προϋπολογισμός": "budget",
		"βαλίτσα":        "pack",
		"συναλλαγές":     "transaction",
		"αναφορά":        "report",
	},
}

var catalogSuggestions = map[model.Variant]map[model.LanguageCode][]Suggestion{
	model.VariantFinance: {
		model.LangEnglish: {
			{Text: "How much did I spend last month?"},
			{Text: "What's my balance?"},
			{Text: "Am I over my budget?"},
			{Text: "Show my recent transactions"},
			{Text: "Export my monthly report"},
			{Text: "How can I save more?"},
		},
		model.LangSpanish: {
			{Text: "¿Cuánto gasté el mes pasado?"},
			{Text: "¿Cuál es mi saldo?"},
			{Text: "¿Me pasé del presupuesto?"},
			{Text: "Muéstrame mis movimientos recientes"},
			{Text: "Exportar mi informe mensual"},
			{Text: "¿Cómo puedo ahorrar más?"},
		},
	},
	model.VariantTravel: {
		model.LangEnglish: {
			{Text: "What should I pack?", TripRelevant: true},
			{Text: "What's my trip budget?"},
			{Text: "How expensive is eating out?", TripRelevant: true},
			{Text: "Tell me about my destination"},
			{Text: "Plan a three day itinerary", TripRelevant: true},
			{Text: "Say hello in the local language"},
		},
		model.LangSpanish: {
			{Text: "¿Qué debería llevar en la maleta?", TripRelevant: true},
			{Text: "¿Cuál es mi presupuesto de viaje?"},
			{Text: "¿Es caro comer fuera?", TripRelevant: true},
			{Text: "Háblame de mi destino"},
			{Text: "Planea un itinerario de tres días", TripRelevant: true},
			{Text: "Saluda en el idioma local"},
		},
	},
}
