package stats

// Domain constants shared by the analyzers. Every classification compares
// strictly (> or <), so a value equal to a threshold falls to the lower band.
const (
	// TradingDaysPerYear annualizes daily volatility.
	TradingDaysPerYear = 252

	// Billion scales raw currency amounts for display.
	Billion = 1e9
	// Million scales share volumes for display.
	Million = 1e6
)

// Price and chart analysis.
const (
	ShortMAWindow    = 5
	LongMAWindow     = 20
	MomentumLookback = 5

	HighVolatility     = 40.0 // annualized %, also the high-risk regime
	ModerateVolatility = 20.0
	TrendStrength      = 0.05 // |price/MA20 - 1|
)

// Income statement.
const (
	HighNetMargin         = 15.0
	ModerateNetMargin     = 8.0
	HighRevenueGrowth     = 15.0
	ModerateRevenueGrowth = 5.0
	EfficientOperating    = 0.2 // operating income / revenue
)

// Balance sheet.
const (
	StrongCurrentRatio   = 1.5
	AdequateCurrentRatio = 1.0
	ConservativeLeverage = 1.0 // debt / equity
	ModerateLeverage     = 2.0
)

// News sentiment.
const (
	BullishSentiment   = 0.3
	BearishSentiment   = -0.3
	HighNewsVolume     = 10
	ModerateNewsVolume = 5
	NewsHighlights     = 3
	NewsTopTopics      = 5
	ExcerptRunes       = 200
)

// Insider transactions.
const (
	InsiderWindow            = 20
	InsiderStrongRatio       = 1.2
	HighInsiderIntensity     = 15
	ModerateInsiderIntensity = 8
	BroadParticipation       = 5
	TopInsiderExecutives     = 3
)

// Analyst recommendations.
const (
	StrongConsensus   = 60.0 // % of ratings
	ModerateConsensus = 40.0
	ConsensusSpread   = 40.0 // |bullish% - bearish%|
	StrongConviction  = 1.0  // |weighted score|
)

// Rating weights of the weighted sentiment score.
const (
	WeightStrongBuy  = 2
	WeightBuy        = 1
	WeightHold       = 0
	WeightSell       = -1
	WeightStrongSell = -2
)
