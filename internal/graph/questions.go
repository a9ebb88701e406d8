package graph

// Question ids. Exported so the classifier and plan dispatcher can inspect
// specific answers without string literals scattered around.
const (
	QAcademicPressure       = "academicPressure"
	QSourceOfPressure       = "sourceOfPressure"
	QWorkload               = "workload"
	QCopingWithWorkload     = "copingWithWorkload"
	QPeerComparison         = "peerComparison"
	QFutureAnxiety          = "futureAnxiety"
	QRelationshipStatus     = "relationshipStatus"
	QSingleLifeSatisfaction = "satisfactionWithSingleLife"
	QRelationshipHealth     = "relationshipHealth"
	QRelationshipStress     = "relationshipStress"
	QSocialSatisfaction     = "socialSatisfaction"
	QSupportSystem          = "supportSystem"
	QSleepQuality           = "sleepQuality"
	QSocialMediaImpact      = "socialMediaImpact"
	QDoomscrolling          = "doomscrolling"
	QFinancialAnxiety       = "financialAnxiety"
	QBurnoutFeeling         = "burnoutFeeling"
	QFeelingDown            = "feelingDown"
	QInterestLoss           = "interestLoss"
	QAnxietyFrequency       = "anxietyFrequency"
	QSelfHarmThoughts       = "selfHarmThoughts"
)

// Display sections.
const (
	SectionAcademics = "Academics"
	SectionSocial    = "Social & Relationships"
	SectionLifestyle = "Lifestyle"
	SectionScreening = "How You've Been Feeling"
)

// Frequency scale shared by the screening questions. Option order is the
// severity order the classifier relies on.
var screeningScale = []string{"Not at all", "Several days", "More than half the days", "Nearly every day"}

// Wellness is the branching wellness questionnaire.
var Wellness = New(QAcademicPressure, []Node{
	{
		ID:      QAcademicPressure,
		Prompt:  "How would you rate the academic pressure you are currently under?",
		Section: SectionAcademics,
		Options: []string{"Low", "Moderate", "High", "Very High"},
		Next: Conditional(map[string]string{
			"Low":       QWorkload,
			"Moderate":  QWorkload,
			"High":      QSourceOfPressure,
			"Very High": QSourceOfPressure,
		}),
	},
	{
		ID:      QSourceOfPressure,
		Prompt:  "Where does most of that pressure come from?",
		Section: SectionAcademics,
		Options: []string{"Exams and grades", "Assignments and deadlines", "Placements and career", "Family expectations"},
		Next:    Fixed(QWorkload),
	},
	{
		ID:      QWorkload,
		Prompt:  "How does your weekly workload feel right now?",
		Section: SectionAcademics,
		Options: []string{"Manageable", "Busy but okay", "Heavy", "Overwhelming"},
		Next: Conditional(map[string]string{
			"Manageable":    QPeerComparison,
			"Busy but okay": QPeerComparison,
			"Heavy":         QPeerComparison,
			"Overwhelming":  QCopingWithWorkload,
		}),
	},
	{
		ID:      QCopingWithWorkload,
		Prompt:  "When the workload piles up, how do you usually cope?",
		Section: SectionAcademics,
		Options: []string{"Taking planned breaks", "Pushing through", "Avoiding it", "I'm not coping"},
		Next:    Fixed(QPeerComparison),
	},
	{
		ID:      QPeerComparison,
		Prompt:  "How often do you compare your progress with your peers?",
		Section: SectionAcademics,
		Options: []string{"Never", "Sometimes", "Often", "Constantly"},
		Next:    Fixed(QFutureAnxiety),
	},
	{
		ID:      QFutureAnxiety,
		Prompt:  "How anxious do you feel about your future after graduation?",
		Section: SectionAcademics,
		Options: []string{"Not at all", "A little", "Quite a bit", "All the time"},
		Next:    Fixed(QRelationshipStatus),
	},
	{
		ID:      QRelationshipStatus,
		Prompt:  "Are you currently in a romantic relationship?",
		Section: SectionSocial,
		Options: []string{"Single", "In a relationship"},
		Next: Conditional(map[string]string{
			"Single":            QSingleLifeSatisfaction,
			"In a relationship": QRelationshipHealth,
		}),
	},
	{
		ID:      QSingleLifeSatisfaction,
		Prompt:  "How do you feel about being single at the moment?",
		Section: SectionSocial,
		Options: []string{"Content", "Mostly fine", "Sometimes lonely", "Unhappy about it"},
		Next:    Fixed(QSocialSatisfaction),
	},
	{
		ID:      QRelationshipHealth,
		Prompt:  "How would you describe that relationship?",
		Section: SectionSocial,
		Options: []string{"Supportive", "Mostly good", "Strained", "Stressful"},
		Next: Conditional(map[string]string{
			"Supportive":  QSocialSatisfaction,
			"Mostly good": QSocialSatisfaction,
			"Strained":    QRelationshipStress,
			"Stressful":   QRelationshipStress,
		}),
	},
	{
		ID:      QRelationshipStress,
		Prompt:  "How often does the relationship leave you feeling stressed?",
		Section: SectionSocial,
		Options: []string{"Rarely", "Sometimes", "Often", "Almost daily"},
		Next:    Fixed(QSocialSatisfaction),
	},
	{
		ID:      QSocialSatisfaction,
		Prompt:  "How satisfied are you with your social life on campus?",
		Section: SectionSocial,
		Options: []string{"Very Satisfied", "Satisfied", "Dissatisfied", "Very Dissatisfied"},
		Next:    Fixed(QSupportSystem),
	},
	{
		ID:      QSupportSystem,
		Prompt:  "Do you have people you can lean on when things get hard?",
		Section: SectionSocial,
		Options: []string{"Yes, several", "Yes, one or two", "Not really", "No one"},
		Next:    Fixed(QSleepQuality),
	},
	{
		ID:      QSleepQuality,
		Prompt:  "How has your sleep been over the last two weeks?",
		Section: SectionLifestyle,
		Options: []string{"Very Good", "Good", "Poor", "Very Poor"},
		Next:    Fixed(QSocialMediaImpact),
	},
	{
		ID:      QSocialMediaImpact,
		Prompt:  "How does social media usually leave you feeling?",
		Section: SectionLifestyle,
		Options: []string{"Positive", "Neutral", "Somewhat negative", "Very negative"},
		Next: Conditional(map[string]string{
			"Positive":          QFinancialAnxiety,
			"Neutral":           QFinancialAnxiety,
			"Somewhat negative": QDoomscrolling,
			"Very negative":     QDoomscrolling,
		}),
	},
	{
		ID:      QDoomscrolling,
		Prompt:  "How often do you find yourself doomscrolling late at night?",
		Section: SectionLifestyle,
		Options: []string{"Never", "Occasionally", "Most nights", "Every night"},
		Next:    Fixed(QFinancialAnxiety),
	},
	{
		ID:      QFinancialAnxiety,
		Prompt:  "How often do money worries weigh on you?",
		Section: SectionLifestyle,
		Options: []string{"Never", "Occasionally", "Frequently", "Constantly"},
		Next:    Fixed(QBurnoutFeeling),
	},
	{
		ID:      QBurnoutFeeling,
		Prompt:  "How often do you feel burnt out or completely drained?",
		Section: SectionLifestyle,
		Options: []string{"Never", "Rarely", "Sometimes", "Often"},
		Next:    Fixed(QFeelingDown),
	},
	{
		ID:      QFeelingDown,
		Prompt:  "Over the last 2 weeks, how often have you been bothered by feeling down, depressed, or hopeless?",
		Section: SectionScreening,
		Options: screeningScale,
		Next:    Fixed(QInterestLoss),
	},
	{
		ID:      QInterestLoss,
		Prompt:  "How often have you had little interest or pleasure in doing things you normally enjoy?",
		Section: SectionScreening,
		Options: screeningScale,
		Next:    Fixed(QAnxietyFrequency),
	},
	{
		ID:      QAnxietyFrequency,
		Prompt:  "How often have you been feeling nervous, anxious, or on edge?",
		Section: SectionScreening,
		Options: screeningScale,
		Next:    Fixed(QSelfHarmThoughts),
	},
	{
		ID:      QSelfHarmThoughts,
		Prompt:  "In the past 2 weeks, have you had thoughts that you would be better off dead, or of hurting yourself?",
		Section: SectionScreening,
		Options: screeningScale,
		Next:    Fixed(EndID),
	},
})
