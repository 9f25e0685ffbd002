package content

// Static site catalogs. The pages render these verbatim; there is no
// admin surface to edit them.

type Course struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Duration    string `json:"duration"`
	Lessons     int    `json:"lessons"`
}

type Promotion struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var Courses = []Course{
	{1, "Forex Fundamentals", "Learn the basics of forex trading, including market structure, currency pairs, and basic analysis.", "beginner", "4 weeks", 12},
	{2, "Technical Analysis", "Master chart patterns, indicators, and technical tools to improve your trading decisions.", "intermediate", "6 weeks", 18},
	{3, "Advanced Trading Strategies", "Develop complex trading strategies and risk management techniques for consistent profits.", "advanced", "8 weeks", 24},
	{4, "Risk Management", "Learn essential risk management principles to protect your capital and maximize returns.", "beginner", "3 weeks", 9},
	{5, "Price Action Trading", "Master the art of reading price action and making trading decisions without indicators.", "intermediate", "5 weeks", 15},
	{6, "Algorithmic Trading", "Learn to create, test, and implement automated trading strategies using programming.", "advanced", "10 weeks", 30},
	{7, "Fundamental Analysis", "Understand how economic events and news impact currency markets and trading opportunities.", "intermediate", "6 weeks", 18},
	{8, "Psychology of Trading", "Develop the mindset of successful traders and overcome emotional barriers to profitability.", "beginner", "4 weeks", 12},
	{9, "Institutional Trading Strategies", "Learn how banks and financial institutions trade and how to align your strategy with smart money.", "advanced", "8 weeks", 24},
}

var Promotions = []Promotion{
	{1, "30% Deposit Bonus", "Get a 30% bonus on your first deposit. Minimum deposit $100."},
	{2, "Zero Commission Trading", "Trade major forex pairs with zero commission for a limited time."},
	{3, "Loyalty Rewards Program", "Earn points for every trade and redeem them for bonuses and benefits."},
	{4, "Refer a Friend Bonus", "Get $50 for each friend you refer who opens an account and makes a deposit."},
	{5, "Summer Trading Challenge", "Compete with other traders for a chance to win prizes worth up to $10,000."},
	{6, "Free VPS Hosting", "Get free VPS hosting for 3 months when you deposit $1,000 or more."},
}
