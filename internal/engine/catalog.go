// Package engine implements the needs inference and routine scheduling core.
// Every function is pure: inputs in, values out, no I/O and no clocks beyond
// the timestamps the caller passes. All lookup tables live in an immutable
// Registry so tests can substitute alternate catalogs.
package engine

import "time"

// NeedTag identifies one care category inferred from signals.
type NeedTag string

const (
	NeedHydration    NeedTag = "hydration"
	NeedElasticity   NeedTag = "elasticity"
	NeedBarrier      NeedTag = "barrier"
	NeedSoothing     NeedTag = "soothing"
	NeedRadiance     NeedTag = "radiance"
	NeedPoreCare     NeedTag = "pore_care"
	NeedSebumControl NeedTag = "sebum_control"
)

// AnswerValue is the binary lifestyle answer format: "O" for yes, "X" for no.
type AnswerValue string

const (
	AnswerYes AnswerValue = "O"
	AnswerNo  AnswerValue = "X"
)

// Valid reports whether the raw answer is one of the two accepted values.
// Anything else is a malformed signal and must never bump a score.
func (a AnswerValue) Valid() bool {
	return a == AnswerYes || a == AnswerNo
}

type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
)

type Status string

const (
	StatusGood    Status = "good"
	StatusNeutral Status = "neutral"
	StatusCaution Status = "caution"
)

type Intensity string

const (
	IntensityGentle   Intensity = "gentle"
	IntensityStandard Intensity = "standard"
	IntensityFocus    Intensity = "focus"
)

// NeedDefinition is the static catalog entry for one need tag.
type NeedDefinition struct {
	Tag                 NeedTag
	Label               string
	Description         string
	Synonyms            []string
	PreferredCategories []string
	Tip                 string
	Habit               string
	// FallbackReason annotates a recommendation when no scoring rule
	// recorded a reason for the attributed need.
	FallbackReason string
}

type ConditionKind string

const (
	// CondPhotoMissing fires when no photo of the given shot type was captured.
	CondPhotoMissing ConditionKind = "photo_missing"
	// CondAnswerIs fires when the merged answer for Question equals Answer.
	CondAnswerIs ConditionKind = "answer_is"
	// CondAnswerNot fires when the question was answered with anything but
	// Answer. An unanswered question never fires it.
	CondAnswerNot ConditionKind = "answer_not"
)

type Condition struct {
	Kind     ConditionKind
	ShotType string
	Question string
	Answer   AnswerValue
}

// Bump is one weighted score contribution with its human-readable justification.
type Bump struct {
	Tag    NeedTag
	Delta  float64
	Reason string
}

// SignalRule maps one observed condition to score bumps. Rules are additive and
// commutative; only the position in the rule table matters, and only as the
// stable tie-break for equal final scores.
type SignalRule struct {
	Name  string
	Cond  Condition
	Bumps []Bump
}

// RoutineAction is one concrete weekly action with a short how-to.
type RoutineAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Topic is the weekly focus resolved from a concern or a prioritized need.
type Topic struct {
	Key     string
	Label   string
	Reason  string
	Actions []RoutineAction
}

// ReportDimension is one fixed inspectable dimension of the analysis report.
// Pore and sebum share a dimension; their scores are summed before thresholding.
type ReportDimension struct {
	ID           string
	Title        string
	Tags         []NeedTag
	Descriptions map[Status]string
	Comparisons  map[Status]string
}

type OptionalStep struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// Defaults centralizes every silent fallback so defaults and scoring rules
// cannot drift independently.
type Defaults struct {
	SessionLabel    string
	Goal            string
	SummaryFallback []string
	CautionFallback string
	Warning         string
	Conclusion      string
	RecommendedDays []string
	DaySets         [][]string
	Intensity       Intensity
	OptionalSteps   []OptionalStep
	BaseRoutine     []string
	InjectedReason  string
}

// Registry is the immutable configuration the whole engine runs on.
type Registry struct {
	needs      map[NeedTag]NeedDefinition
	needOrder  []NeedTag
	rules      []SignalRule
	topics     map[NeedTag]Topic
	dimensions []ReportDimension
	defaults   Defaults
}

func (r *Registry) Need(tag NeedTag) (NeedDefinition, bool) {
	def, ok := r.needs[tag]
	return def, ok
}

func (r *Registry) Rules() []SignalRule { return r.rules }

func (r *Registry) TopicFor(tag NeedTag) (Topic, bool) {
	t, ok := r.topics[tag]
	return t, ok
}

func (r *Registry) Dimensions() []ReportDimension { return r.dimensions }

func (r *Registry) Defaults() Defaults { return r.defaults }

// RegistryConfig is the raw material for a Registry. Tests build small ones.
type RegistryConfig struct {
	Needs      []NeedDefinition
	Rules      []SignalRule
	Topics     []Topic
	TopicTags  []NeedTag
	Dimensions []ReportDimension
	Defaults   Defaults
}

func NewRegistry(cfg RegistryConfig) *Registry {
	reg := &Registry{
		needs:      make(map[NeedTag]NeedDefinition, len(cfg.Needs)),
		needOrder:  make([]NeedTag, 0, len(cfg.Needs)),
		rules:      cfg.Rules,
		topics:     make(map[NeedTag]Topic, len(cfg.Topics)),
		dimensions: cfg.Dimensions,
		defaults:   cfg.Defaults,
	}
	for _, def := range cfg.Needs {
		reg.needs[def.Tag] = def
		reg.needOrder = append(reg.needOrder, def.Tag)
	}
	for i, topic := range cfg.Topics {
		reg.topics[cfg.TopicTags[i]] = topic
	}
	return reg
}

// DefaultRegistry builds the production catalog.
func DefaultRegistry() *Registry {
	return NewRegistry(RegistryConfig{
		Needs:      defaultNeeds,
		Rules:      defaultRules,
		Topics:     defaultTopics,
		TopicTags:  defaultTopicTags,
		Dimensions: defaultDimensions,
		Defaults:   defaultValues,
	})
}

var defaultNeeds = []NeedDefinition{
	{
		Tag:                 NeedHydration,
		Label:               "수분 밀도",
		Description:         "피부 속 수분이 부족해 당김과 푸석함이 나타나기 쉬운 상태예요.",
		Synonyms:            []string{"hydration", "moisture", "moisturizing", "hyaluronic", "수분", "보습"},
		PreferredCategories: []string{"serum", "ampoule", "cream", "토너"},
		Tip:                 "세안 후 3분 안에 보습제를 발라 수분 증발을 막아 주세요.",
		Habit:               "하루 물 8잔 마시기",
		FallbackReason:      "수분 공급이 우선인 피부 상태예요.",
	},
	{
		Tag:                 NeedElasticity,
		Label:               "탄력 케어",
		Description:         "피부 결이 무너지기 쉬워 탄력 관리가 필요한 상태예요.",
		Synonyms:            []string{"elasticity", "firming", "anti_aging", "collagen", "peptide", "retinol", "탄력", "주름"},
		PreferredCategories: []string{"serum", "ampoule", "eye_cream"},
		Tip:                 "저녁 루틴에 탄력 세럼을 추가하고 얼굴 마사지를 가볍게 해 주세요.",
		Habit:               "취침 전 5분 페이스 롤러",
		FallbackReason:      "탄력 저하 신호가 관찰되는 상태예요.",
	},
	{
		Tag:                 NeedBarrier,
		Label:               "장벽 강화",
		Description:         "외부 자극에 쉽게 반응하는 피부 장벽을 단단하게 만들어야 해요.",
		Synonyms:            []string{"barrier", "ceramide", "repair", "panthenol", "장벽", "보호"},
		PreferredCategories: []string{"cream", "balm", "mist"},
		Tip:                 "세라마이드가 들어간 크림으로 하루를 마무리해 주세요.",
		Habit:               "과한 각질 제거 피하기",
		FallbackReason:      "피부 장벽을 보강할 필요가 있는 상태예요.",
	},
	{
		Tag:                 NeedSoothing,
		Label:               "진정 케어",
		Description:         "붉어짐과 자극 반응이 잦아 진정이 먼저 필요한 상태예요.",
		Synonyms:            []string{"soothing", "calming", "cica", "centella", "madecassoside", "진정", "시카"},
		PreferredCategories: []string{"serum", "mask", "mist"},
		Tip:                 "자극이 느껴지는 날은 단계를 줄이고 진정 제품만 얇게 발라 주세요.",
		Habit:               "뜨거운 물 세안 줄이기",
		FallbackReason:      "민감 반응을 가라앉히는 케어가 필요한 상태예요.",
	},
	{
		Tag:                 NeedRadiance,
		Label:               "광채 톤 케어",
		Description:         "칙칙함이 쌓이기 쉬워 톤과 광채 관리가 필요한 상태예요.",
		Synonyms:            []string{"radiance", "brightening", "glow", "vitamin_c", "niacinamide", "미백", "광채", "톤업"},
		PreferredCategories: []string{"serum", "ampoule", "sunscreen"},
		Tip:                 "아침 루틴에 비타민 성분을, 외출 전엔 자외선 차단제를 챙겨 주세요.",
		Habit:               "외출 30분 전 자외선 차단제 바르기",
		FallbackReason:      "톤 관리와 광채 케어가 필요한 상태예요.",
	},
	{
		Tag:                 NeedPoreCare,
		Label:               "모공 케어",
		Description:         "모공이 눈에 띄기 쉬운 상태라 결 정리가 필요해요.",
		Synonyms:            []string{"pore", "pore_care", "bha", "clay", "모공"},
		PreferredCategories: []string{"cleanser", "mask", "토너"},
		Tip:                 "주 1~2회 클레이 마스크로 모공 속 노폐물을 정리해 주세요.",
		Habit:               "주 2회 저녁 딥클렌징",
		FallbackReason:      "모공 결 정리가 필요한 상태예요.",
	},
	{
		Tag:                 NeedSebumControl,
		Label:               "피지 밸런스",
		Description:         "유분 분비가 과해지기 쉬워 피지 밸런스 조절이 필요해요.",
		Synonyms:            []string{"sebum", "sebum_control", "oil_control", "피지", "유분"},
		PreferredCategories: []string{"토너", "cleanser", "sunscreen"},
		Tip:                 "유분이 많은 부위는 가벼운 제형으로 바꿔 레이어링을 줄여 보세요.",
		Habit:               "오후에 기름종이 대신 미스트 사용",
		FallbackReason:      "피지 분비 조절이 필요한 상태예요.",
	},
}

// defaultRules is the ordered signal→bump table. Order defines the stable
// tie-break between equal final scores, nothing else.
var defaultRules = []SignalRule{
	{
		Name: "closeup_missing",
		Cond: Condition{Kind: CondPhotoMissing, ShotType: ShotTypeCloseup},
		Bumps: []Bump{
			{Tag: NeedHydration, Delta: 1, Reason: "클로즈업 촬영이 없어 표면 수분 상태를 보수적으로 추정했어요."},
		},
	},
	{
		Name: "baseline_missing",
		Cond: Condition{Kind: CondPhotoMissing, ShotType: ShotTypeBaseline},
		Bumps: []Bump{
			{Tag: NeedElasticity, Delta: 0.5, Reason: "정면 기본 촬영이 없어 윤곽 탄력을 추정으로 보완했어요."},
		},
	},
	{
		Name: "sensitive_skin",
		Cond: Condition{Kind: CondAnswerIs, Question: "sensitive_skin", Answer: AnswerYes},
		Bumps: []Bump{
			{Tag: NeedSoothing, Delta: 2, Reason: "민감성 피부라고 응답해서 진정 케어를 우선순위에 올렸어요."},
			{Tag: NeedBarrier, Delta: 1.5, Reason: "민감 반응이 잦은 피부는 장벽 보강이 함께 필요해요."},
		},
	},
	{
		Name: "sunscreen_skipped",
		Cond: Condition{Kind: CondAnswerNot, Question: "daily_sunscreen", Answer: AnswerYes},
		Bumps: []Bump{
			{Tag: NeedRadiance, Delta: 2, Reason: "자외선 차단제를 매일 바르지 않아 톤 관리가 필요해요."},
			{Tag: NeedElasticity, Delta: 0.5, Reason: "자외선 노출은 탄력 저하로 이어지기 쉬워요."},
		},
	},
	{
		Name: "oily_tzone",
		Cond: Condition{Kind: CondAnswerIs, Question: "oily_tzone", Answer: AnswerYes},
		Bumps: []Bump{
			{Tag: NeedSebumControl, Delta: 1.5, Reason: "T존 유분이 많다고 응답해 피지 밸런스를 챙겼어요."},
			{Tag: NeedPoreCare, Delta: 1, Reason: "유분이 많은 부위는 모공 관리가 함께 필요해요."},
		},
	},
	{
		Name: "dry_after_wash",
		Cond: Condition{Kind: CondAnswerIs, Question: "dry_after_wash", Answer: AnswerYes},
		Bumps: []Bump{
			{Tag: NeedHydration, Delta: 1.5, Reason: "세안 후 당김이 있다고 응답해 수분 보충이 필요해요."},
			{Tag: NeedBarrier, Delta: 0.5, Reason: "세안 후 건조함은 장벽 약화 신호일 수 있어요."},
		},
	},
	{
		Name: "late_sleep",
		Cond: Condition{Kind: CondAnswerIs, Question: "late_sleep", Answer: AnswerYes},
		Bumps: []Bump{
			{Tag: NeedRadiance, Delta: 1, Reason: "늦은 취침이 잦으면 피부 톤이 쉽게 칙칙해져요."},
			{Tag: NeedElasticity, Delta: 0.5, Reason: "수면 부족은 탄력 회복 시간을 줄여요."},
		},
	},
	{
		Name: "double_cleanse_skipped",
		Cond: Condition{Kind: CondAnswerNot, Question: "double_cleanse", Answer: AnswerYes},
		Bumps: []Bump{
			{Tag: NeedPoreCare, Delta: 1, Reason: "이중 세안을 하지 않아 모공 속 잔여물이 남기 쉬워요."},
		},
	},
	{
		Name: "outdoor_daily",
		Cond: Condition{Kind: CondAnswerIs, Question: "outdoor_daily", Answer: AnswerYes},
		Bumps: []Bump{
			{Tag: NeedBarrier, Delta: 1, Reason: "야외 활동이 많아 외부 자극으로부터 장벽 보호가 필요해요."},
			{Tag: NeedSoothing, Delta: 0.5, Reason: "외부 자극이 잦으면 진정 케어를 곁들이는 게 좋아요."},
		},
	},
	{
		Name: "makeup_daily",
		Cond: Condition{Kind: CondAnswerIs, Question: "makeup_daily", Answer: AnswerYes},
		Bumps: []Bump{
			{Tag: NeedPoreCare, Delta: 0.5, Reason: "매일 메이크업을 하면 모공 관리가 더 중요해져요."},
			{Tag: NeedSebumControl, Delta: 0.5, Reason: "메이크업이 유분과 섞이면 피부 밸런스가 무너지기 쉬워요."},
		},
	},
}

var defaultTopicTags = []NeedTag{
	NeedHydration, NeedElasticity, NeedBarrier, NeedSoothing,
	NeedRadiance, NeedPoreCare, NeedSebumControl,
}

var defaultTopics = []Topic{
	{
		Key:    "hydration_week",
		Label:  "수분 집중 주간",
		Reason: "속당김을 줄이는 게 이번 주 가장 빠른 개선 포인트예요.",
		Actions: []RoutineAction{
			{Title: "수분 레이어링", Description: "토너를 두 번 나눠 바르고 수분 세럼으로 마무리해 주세요."},
			{Title: "수분 마스크", Description: "주 2회 저녁에 수분 마스크를 10분간 올려 주세요."},
		},
	},
	{
		Key:    "firming_week",
		Label:  "탄력 루틴 주간",
		Reason: "탄력 신호가 떨어져 있어 리프팅 습관을 들일 타이밍이에요.",
		Actions: []RoutineAction{
			{Title: "탄력 세럼 도포", Description: "저녁 세안 후 탄력 세럼을 턱선부터 위로 쓸어올리며 발라 주세요."},
			{Title: "경혈 마사지", Description: "광대 아래를 3분간 지그시 눌러 순환을 도와주세요."},
		},
	},
	{
		Key:    "barrier_week",
		Label:  "장벽 회복 주간",
		Reason: "자극 요인을 줄이고 장벽을 다시 쌓는 데 집중할 때예요.",
		Actions: []RoutineAction{
			{Title: "저자극 세안", Description: "미온수와 약산성 클렌저로 1분 이내에 세안을 끝내 주세요."},
			{Title: "보습 실링", Description: "크림 위에 밤을 얇게 덧발라 수분 증발을 막아 주세요."},
		},
	},
	{
		Key:    "soothing_week",
		Label:  "진정 집중 주간",
		Reason: "자극 반응이 잦아 피부를 쉬게 하는 게 우선이에요.",
		Actions: []RoutineAction{
			{Title: "진정 팩", Description: "시카 성분 마스크를 주 2회, 자극 부위 위주로 올려 주세요."},
			{Title: "루틴 다이어트", Description: "이번 주는 세안-진정-보습 세 단계만 유지해 주세요."},
		},
	},
	{
		Key:    "radiance_week",
		Label:  "톤 광채 주간",
		Reason: "칙칙함이 쌓이기 전에 톤 관리 습관을 잡아야 해요.",
		Actions: []RoutineAction{
			{Title: "비타민 부스팅", Description: "아침 보습 전에 비타민 세럼을 한 방울 섞어 발라 주세요."},
			{Title: "자외선 차단 습관", Description: "외출 30분 전 차단제를 바르고 3시간마다 덧발라 주세요."},
		},
	},
	{
		Key:    "pore_week",
		Label:  "모공 결 정리 주간",
		Reason: "모공 주변 결이 거칠어져 정리가 필요한 시점이에요.",
		Actions: []RoutineAction{
			{Title: "딥클렌징", Description: "주 2회 저녁에 클레이 마스크로 T존을 정리해 주세요."},
			{Title: "결 정리 토너", Description: "각질 케어 토너를 화장솜에 적셔 결 방향으로 닦아 주세요."},
		},
	},
	{
		Key:    "sebum_week",
		Label:  "피지 밸런스 주간",
		Reason: "유분 밸런스가 무너져 가벼운 관리로 조절이 필요해요.",
		Actions: []RoutineAction{
			{Title: "가벼운 레이어링", Description: "유분 부위는 로션 대신 젤 타입으로 바꿔 주세요."},
			{Title: "미스트 수분 보충", Description: "오후 유분기가 올라올 때 미스트로 수분만 보충해 주세요."},
		},
	},
}

var defaultDimensions = []ReportDimension{
	{
		ID:    "hydration",
		Title: "수분",
		Tags:  []NeedTag{NeedHydration},
		Descriptions: map[Status]string{
			StatusGood:    "수분 밸런스가 안정적으로 유지되고 있어요.",
			StatusNeutral: "수분이 조금씩 빠져나가고 있어 보충이 필요해요.",
			StatusCaution: "속당김이 심해지기 쉬운 상태라 수분 집중 케어가 필요해요.",
		},
		Comparisons: map[Status]string{
			StatusGood:    "또래 평균보다 촉촉한 편이에요.",
			StatusNeutral: "또래 평균과 비슷한 수준이에요.",
			StatusCaution: "또래 평균보다 건조한 편이에요.",
		},
	},
	{
		ID:    "elasticity",
		Title: "탄력",
		Tags:  []NeedTag{NeedElasticity},
		Descriptions: map[Status]string{
			StatusGood:    "탄력 지표가 좋은 흐름을 유지하고 있어요.",
			StatusNeutral: "탄력이 서서히 떨어질 수 있어 예방 관리가 좋아요.",
			StatusCaution: "탄력 저하 신호가 뚜렷해 집중 관리가 필요해요.",
		},
		Comparisons: map[Status]string{
			StatusGood:    "나이 평균 대비 탄탄한 편이에요.",
			StatusNeutral: "나이 평균 수준을 유지하고 있어요.",
			StatusCaution: "나이 평균보다 처짐이 빠른 편이에요.",
		},
	},
	{
		ID:    "barrier",
		Title: "장벽",
		Tags:  []NeedTag{NeedBarrier},
		Descriptions: map[Status]string{
			StatusGood:    "피부 장벽이 외부 자극을 잘 막아내고 있어요.",
			StatusNeutral: "장벽이 약해질 수 있는 생활 신호가 보여요.",
			StatusCaution: "장벽이 약해져 자극에 민감하게 반응하는 상태예요.",
		},
		Comparisons: map[Status]string{
			StatusGood:    "자극 반응이 평균보다 적은 편이에요.",
			StatusNeutral: "자극 반응이 평균 수준이에요.",
			StatusCaution: "자극 반응이 평균보다 잦은 편이에요.",
		},
	},
	{
		ID:    "radiance",
		Title: "광채",
		Tags:  []NeedTag{NeedRadiance},
		Descriptions: map[Status]string{
			StatusGood:    "피부 톤이 맑고 균일하게 유지되고 있어요.",
			StatusNeutral: "칙칙함이 조금씩 쌓일 수 있는 상태예요.",
			StatusCaution: "톤 불균형이 진행되기 쉬워 광채 케어가 필요해요.",
		},
		Comparisons: map[Status]string{
			StatusGood:    "평균보다 맑은 톤을 유지 중이에요.",
			StatusNeutral: "평균과 비슷한 톤이에요.",
			StatusCaution: "평균보다 톤이 고르지 않은 편이에요.",
		},
	},
	{
		ID:    "pore_sebum",
		Title: "모공·피지",
		Tags:  []NeedTag{NeedPoreCare, NeedSebumControl},
		Descriptions: map[Status]string{
			StatusGood:    "모공과 피지 밸런스가 잘 잡혀 있어요.",
			StatusNeutral: "피지 분비가 늘어날 수 있는 생활 패턴이에요.",
			StatusCaution: "모공과 피지 관리가 시급한 상태예요.",
		},
		Comparisons: map[Status]string{
			StatusGood:    "유분 밸런스가 평균보다 안정적이에요.",
			StatusNeutral: "유분 밸런스가 평균 수준이에요.",
			StatusCaution: "유분 변동이 평균보다 큰 편이에요.",
		},
	},
}

var defaultValues = Defaults{
	SessionLabel: "이번 세션 분석",
	Goal:         "피부 기초 체력 끌어올리기",
	SummaryFallback: []string{
		"기록이 쌓이면 더 정확한 월간 분석을 드릴 수 있어요.",
		"이번 달은 기본 루틴을 꾸준히 유지하는 데 집중해 보세요.",
	},
	CautionFallback: "새 제품은 귀 뒤에 먼저 발라 반응을 확인하고 사용해 주세요.",
	Warning:         "피부 상태가 평소와 다르게 느껴지는 날은 루틴 강도를 한 단계 낮춰 주세요.",
	Conclusion:      "이번 주는 무리하지 않고 정해진 요일만 지켜도 충분해요.",
	RecommendedDays: []string{"Mon", "Wed", "Fri"},
	DaySets: [][]string{
		{"Mon", "Wed", "Fri"},
		{"Tue", "Thu", "Sat"},
		{"Mon", "Thu", "Sun"},
	},
	Intensity: IntensityStandard,
	OptionalSteps: []OptionalStep{
		{ID: "soothing_mask", Label: "주 1회 진정 마스크", Enabled: true},
		{ID: "exfoliation", Label: "주 1회 저자극 각질 케어", Enabled: false},
		{ID: "facial_massage", Label: "저녁 3분 얼굴 마사지", Enabled: false},
	},
	BaseRoutine: []string{
		"미온수로 부드럽게 세안",
		"토너로 피부 결 정리",
		"보습제로 마무리",
	},
	InjectedReason: "두드러진 신호가 없어 기본 수분 케어를 추천해요.",
}

// SafetyTip is appended to the tip list whenever the sunscreen signal is negative.
const SafetyTip = "외출 전 자외선 차단제를 꼭 발라 주세요. 광노화는 예방이 가장 쉬운 관리예요."

const (
	ShotTypeBaseline = "baseline"
	ShotTypeCloseup  = "closeup"
)

// QuestionSunscreen is consulted directly by the narrative composer for the
// conditional safety tip; all other questions exist only inside the rule table.
const QuestionSunscreen = "daily_sunscreen"

// PhotoSignal is captured-photo metadata. Signals are inputs only, never mutated.
type PhotoSignal struct {
	ShotType   string
	FocusArea  string
	CapturedAt time.Time
}

// AnswerSignal is one binary lifestyle answer.
type AnswerSignal struct {
	QuestionKey string
	Answer      AnswerValue
}
