package calendar

type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Event is the canonical economic-calendar record served by every endpoint.
// Forecast and Previous are always populated; Actual only once the event
// date has passed.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Currency    string `json:"currency"`
	Impact      Impact `json:"impact"`
	Forecast    string `json:"forecast"`
	Previous    string `json:"previous"`
	Actual      string `json:"actual,omitempty"`
	Description string `json:"description"`
}

var currencies = []string{"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "NZD"}

type indicator struct {
	Name        string
	Impact      Impact
	Description string
}

var indicators = []indicator{
	{"Interest Rate Decision", ImpactHigh, "Central bank decision on the key interest rate."},
	{"Non-Farm Payrolls", ImpactHigh, "Change in the number of employed people during the previous month, excluding the farming industry."},
	{"GDP", ImpactHigh, "Gross Domestic Product - the monetary value of all finished goods and services made within a country during a specific period."},
	{"CPI", ImpactHigh, "Consumer Price Index - changes in the price level of a weighted average market basket of consumer goods and services."},
	{"Retail Sales", ImpactMedium, "An aggregated measure of the sales of retail goods over a stated time period."},
	{"PMI", ImpactMedium, "Purchasing Managers' Index - an indicator of economic health for manufacturing and service sectors."},
	{"Unemployment Rate", ImpactMedium, "The percentage of the total labor force that is unemployed but actively seeking employment."},
	{"Trade Balance", ImpactMedium, "The difference between a country's imports and its exports."},
	{"Industrial Production", ImpactLow, "Measures the output of the industrial sector of the economy."},
	{"Consumer Confidence", ImpactLow, "A measure of consumer optimism on the state of the economy."},
}
