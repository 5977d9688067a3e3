package advice

// promptInputs lists every variable promptTemplate reads.
var promptInputs = []string{
	"gender", "age", "current_weight", "target_weight", "activity_level",
	"bmr", "tdee", "daily_calories", "days_to_goal", "warning",
}

// promptTemplate is a Go text/template rendered by langchaingo's prompts
// package. The reply shape must match Advice.
const promptTemplate = `Act as a specialised, motivating sports nutritionist.

Analyse this user's data:
- Gender: {{.gender}}
- Age: {{.age}} years
- Current weight: {{.current_weight}} kg
- Target weight: {{.target_weight}} kg
- Activity level: {{.activity_level}}
- BMR: {{.bmr}} kcal
- Total daily energy expenditure (TDEE): {{.tdee}} kcal
- Recommended daily calories: {{.daily_calories}} kcal
- Days to reach the goal: {{.days_to_goal}}
{{if .warning}}
IMPORTANT: the raw calculation produced a dangerously low intake, so it was raised to the safe minimum. Stress the importance of not starving.
{{end}}
Reply with a JSON object only (no markdown code fences) with this structure:
{
  "tip": "A short, motivating, science-based tip about their journey (max 2 sentences).",
  "mealPlan": "A breakfast and lunch idea that fits these calories.",
  "macros": "An approximate protein/carb/fat split in percent."
}`
