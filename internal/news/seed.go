// Package news holds the fixed article seed served by GET /news. The list is
// read-only after startup; no scraping or refresh happens at runtime.
package news

// Source identifies the publisher of an article
type Source struct {
	Name string `json:"name"`
}

// Item is one article in the seed listing
type Item struct {
	Title       string `json:"title"`
	Source      Source `json:"source"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

// Seed returns the fixed article listing.
func Seed() []Item {
	return seed
}

var seed = []Item{
	{
		Title:       "India’s pension funds warn proposed bond rules may distort values",
		Source:      Source{Name: "Economic Times"},
		URL:         "https://economictimes.indiatimes.com/news/economy/finance/indias-pension-funds-warn-proposed-bond-rules-may-distort-values/articleshow/125902100.cms",
		Description: "Pension-fund managers caution that proposed bond-market rules could distort valuations and hurt long-term investors.",
		Category:    "Bonds / Regulatory",
		Image:       "/images/Pension.jpg",
	},
	{
		Title:       "RBI cuts repo rate by 25 bp to 5.25% — ‘rare Goldilocks period’ for economy",
		Source:      Source{Name: "Indian Express"},
		URL:         "https://indianexpress.com/article/business/economy/repo-rate-cut-25-bp-to-5-25-rare-goldilocks-period-says-rbi-governor-10405107/?ref=business_pg",
		Description: "The Reserve Bank of India trims its key repo rate, citing low inflation and stable growth — signalling support for growth.",
		Category:    "RBI / Monetary Policy",
		Image:       "/images/repo rate.jpg",
	},
	{
		Title:       "SGB 2017-18 Series XI matures; ₹1 lakh investment now worth over ₹4.3 lakh",
		Source:      Source{Name: "Moneycontrol"},
		URL:         "https://www.moneycontrol.com/news/business/personal-finance/sgb-2017-18-series-xi-matures-on-dec-11-rs-1-lakh-investment-now-worth-over-rs-4-3-lakh-as-rbi-sets-redemption-price-13720119.html",
		Description: "The Sovereign Gold Bond 2017-18 Series XI matures today — early investors see substantial returns.",
		Category:    "Investments / Bonds",
		Image:       "/images/investment.jpg",
	},
	{
		Title:       "What is Trump’s Gold Card: Eligibility, benefits, price & how to apply",
		Source:      Source{Name: "Times of India"},
		URL:         "https://timesofindia.indiatimes.com/business/international-business/what-is-trumps-gold-card-eligibility-benefits-price-and-how-to-apply-faqs-answered/articleshow/125900980.cms",
		Description: "A look at Trump‘s Gold Card scheme — who is eligible, what are the benefits, cost and application details.",
		Category:    "International / Finance",
		Image:       "/images/gold card.jpg",
	},
	{
		Title:       "Jio Financial Services invests ₹230 cr in two JVs",
		Source:      Source{Name: "Inc42"},
		URL:         "https://inc42.com/buzz/jio-financial-services-pumps-inr-230-cr-in-two-jvs/",
		Description: "Jio Financial Services makes strategic investment of ₹230 crore across two new joint ventures.",
		Category:    "Fintech / Investment",
		Image:       "/images/jio investment.jpg",
	},
	{
		Title:       "RBI floating-rate savings bonds explained: returns, eligibility and key rules",
		Source:      Source{Name: "LiveMint"},
		URL:         "https://www.livemint.com/money/rbi-floating-rate-savings-bonds-explained-returns-eligibility-and-key-rules-11765355423116.html",
		Description: "A breakdown of new floating-rate savings bonds issued by RBI — how they work, who should invest, and what to know.",
		Category:    "Savings / Bonds",
		Image:       "/images/bond.jpg",
	},
	{
		Title:       "Nippon India Large-Cap Fund tops 5-year return chart — beats benchmark by 5 % CAGR",
		Source:      Source{Name: "Financial Express"},
		URL:         "https://www.financialexpress.com/money/nippon-india-large-cap-fund-tops-5-year-return-chart-beats-benchmark-by-5-cagr-4072324/",
		Description: "Large-cap mutual fund outperforms benchmark over 5 years, delivering strong returns for investors.",
		Category:    "Mutual Funds / Investments",
		Image:       "/images/Mutual fund.jpg",
	},
	{
		Title:       "Crypto markets hold steady as investors await US Fed rate-cut guidance",
		Source:      Source{Name: "Business Standard"},
		URL:         "https://www.business-standard.com/markets/cryptocurrency/crypto-markets-hold-steady-as-investors-await-us-fed-rate-cut-guidance-125121000499_1.html",
		Description: "Cryptocurrency markets remain stable amid global rate-cut expectations and investor caution.",
		Category:    "Crypto / Markets",
		Image:       "/images/crypto.jpg",
	},
	{
		Title:       "Market down: Where to invest — Large vs Mid vs Small-cap, says HDFC Securities CEO",
		Source:      Source{Name: "India Today"},
		URL:         "https://www.indiatoday.in/business/market/story/market-down-where-to-invest-large-vs-mid-vs-small-cap-hdfc-securities-md-ceo-dheeraj-relli-2834222-2025-12-11",
		Description: "In a down market, HDFC Securities CEO discusses pros and cons of investing in large-, mid- and small-cap funds.",
		Category:    "Markets / Equity",
		Image:       "/images/market analysis.jpg",
	},
	{
		Title:       "Home-loan borrowers to save up to ₹9 lakh on a ₹50 lakh loan after rate cuts: Analysis",
		Source:      Source{Name: "Financial Express"},
		URL:         "https://www.financialexpress.com/money/rbi-policy-home-loan-borrowers-save-rs-9-lakh-in-emis-on-rs-50-lakh-loan-after-rate-cuts-in-2025-4066553/",
		Description: "Recent rate cuts by RBI could significantly reduce EMIs and overall cost for home-loan borrowers.",
		Category:    "Housing Loans / EMI",
		Image:       "/images/home loan.jpg",
	},
	{
		Title:       "Rate cut by RBI slashes EMIs — good news for home-loan borrowers",
		Source:      Source{Name: "The Week"},
		URL:         "https://www.theweek.in/news/biz-tech/2025/12/05/good-news-for-home-loan-borrowers-as-rbi-slashes-repo-rate-here-is-how-it-impacts-your-emi.html",
		Description: "With RBI’s repo-rate reduction, home-loan EMIs may fall — making loans cheaper for borrowers.",
		Category:    "Housing Loans / EMI",
		Image:       "/images/emi reduction.jpg",
	},
}
