package questionbank

import "pathshala_backend/internal/model"

// Template 静态题库中的一道手工编写的双语题。TemplateID 是稳定标识：
// 抽样去重一律基于它，而不是对象地址。
type Template struct {
	TemplateID     string
	Subject        model.Subject
	Difficulty     model.Difficulty
	QuestionTextEn string
	QuestionTextHi string
	OptionsEn      []string
	OptionsHi      []string
	CorrectAnswer  int
	ExplanationEn  string
	ExplanationHi  string
	ExamType       string
}

// diagnosticCatalog 诊断测试抽样池，覆盖四个核心科目。
var diagnosticCatalog = []Template{
	{
		TemplateID:     "diag-quant-01",
		Subject:        model.SubjectQuantitative,
		Difficulty:     model.DifficultyBeginner,
		QuestionTextEn: "What is 25% of 800?",
		QuestionTextHi: "800 का 25% क्या है?",
		OptionsEn:      []string{"150", "200", "250", "300"},
		OptionsHi:      []string{"150", "200", "250", "300"},
		CorrectAnswer:  1,
		ExplanationEn:  "25% of 800 = (25/100) × 800 = 200",
		ExplanationHi:  "800 का 25% = (25/100) × 800 = 200",
		ExamType:       "SSC",
	},
	{
		TemplateID:     "diag-quant-02",
		Subject:        model.SubjectQuantitative,
		Difficulty:     model.DifficultyBeginner,
		QuestionTextEn: "If a man buys 12 apples for Rs. 60, what is the cost of one apple?",
		QuestionTextHi: "यदि एक व्यक्ति 60 रुपये में 12 सेब खरीदता है, तो एक सेब की कीमत क्या है?",
		OptionsEn:      []string{"Rs. 4", "Rs. 5", "Rs. 6", "Rs. 7"},
		OptionsHi:      []string{"₹4", "₹5", "₹6", "₹7"},
		CorrectAnswer:  1,
		ExplanationEn:  "Cost of one apple = Total cost / Number of apples = 60/12 = Rs. 5",
		ExplanationHi:  "एक सेब की कीमत = कुल कीमत / सेब की संख्या = 60/12 = ₹5",
		ExamType:       "SSC",
	},
	{
		TemplateID:     "diag-quant-03",
		Subject:        model.SubjectQuantitative,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "A train travels 180 km in 3 hours. What is its speed in km/hr?",
		QuestionTextHi: "एक ट्रेन 3 घंटे में 180 किमी की यात्रा करती है। इसकी गति किमी/घंटा में क्या है?",
		OptionsEn:      []string{"50 km/hr", "60 km/hr", "70 km/hr", "80 km/hr"},
		OptionsHi:      []string{"50 किमी/घंटा", "60 किमी/घंटा", "70 किमी/घंटा", "80 किमी/घंटा"},
		CorrectAnswer:  1,
		ExplanationEn:  "Speed = Distance / Time = 180 km / 3 hours = 60 km/hr",
		ExplanationHi:  "गति = दूरी / समय = 180 किमी / 3 घंटे = 60 किमी/घंटा",
		ExamType:       "SSC",
	},
	{
		TemplateID:     "diag-reason-01",
		Subject:        model.SubjectReasoning,
		Difficulty:     model.DifficultyBeginner,
		QuestionTextEn: "If CODING is written as DPEJOH, how is FILING written?",
		QuestionTextHi: "यदि CODING को DPEJOH लिखा जाता है, तो FILING कैसे लिखा जाएगा?",
		OptionsEn:      []string{"GJMJOH", "GJMJPI", "GJLJOH", "GJMJNG"},
		OptionsHi:      []string{"GJMJOH", "GJMJPI", "GJLJOH", "GJMJNG"},
		CorrectAnswer:  0,
		ExplanationEn:  "Each letter is shifted by +1 in the alphabet. F→G, I→J, L→M, I→J, N→O, G→H",
		ExplanationHi:  "प्रत्येक अक्षर को वर्णमाला में +1 से बदला जाता है। F→G, I→J, L→M, I→J, N→O, G→H",
		ExamType:       "SSC",
	},
	{
		TemplateID:     "diag-reason-02",
		Subject:        model.SubjectReasoning,
		Difficulty:     model.DifficultyBeginner,
		QuestionTextEn: "Complete the series: 2, 4, 8, 16, ?",
		QuestionTextHi: "श्रृंखला पूरी करें: 2, 4, 8, 16, ?",
		OptionsEn:      []string{"24", "28", "32", "36"},
		OptionsHi:      []string{"24", "28", "32", "36"},
		CorrectAnswer:  2,
		ExplanationEn:  "Each number is double the previous number. 16 × 2 = 32",
		ExplanationHi:  "प्रत्येक संख्या पिछली संख्या की दोगुनी है। 16 × 2 = 32",
		ExamType:       "Banking",
	},
	{
		TemplateID:     "diag-reason-03",
		Subject:        model.SubjectReasoning,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "In a certain code, CAT is written as FDW. How is DOG written?",
		QuestionTextHi: "एक निश्चित कूट में, CAT को FDW लिखा जाता है। DOG कैसे लिखा जाएगा?",
		OptionsEn:      []string{"GRJ", "ERK", "FQI", "HRL"},
		OptionsHi:      []string{"GRJ", "ERK", "FQI", "HRL"},
		CorrectAnswer:  0,
		ExplanationEn:  "Each letter is shifted by +3 positions: D→G, O→R, G→J",
		ExplanationHi:  "प्रत्येक अक्षर को +3 स्थान आगे बढ़ाया गया है: D→G, O→R, G→J",
		ExamType:       "SSC",
	},
	{
		TemplateID:     "diag-eng-01",
		Subject:        model.SubjectEnglish,
		Difficulty:     model.DifficultyBeginner,
		QuestionTextEn: "Choose the correct synonym for 'ABUNDANT':",
		QuestionTextHi: "'ABUNDANT' का सही समानार्थी शब्द चुनें:",
		OptionsEn:      []string{"Scarce", "Plentiful", "Limited", "Rare"},
		OptionsHi:      []string{"दुर्लभ", "प्रचुर", "सीमित", "कम"},
		CorrectAnswer:  1,
		ExplanationEn:  "Abundant means existing in large quantities; plentiful.",
		ExplanationHi:  "Abundant का अर्थ है बड़ी मात्रा में मौजूद; प्रचुर।",
		ExamType:       "Banking",
	},
	{
		TemplateID:     "diag-eng-02",
		Subject:        model.SubjectEnglish,
		Difficulty:     model.DifficultyBeginner,
		QuestionTextEn: "Choose the correct antonym for 'HAPPY':",
		QuestionTextHi: "'HAPPY' का सही विपरीतार्थी शब्द चुनें:",
		OptionsEn:      []string{"Joyful", "Sad", "Cheerful", "Pleased"},
		OptionsHi:      []string{"खुशी", "दुखी", "प्रसन्न", "संतुष्ट"},
		CorrectAnswer:  1,
		ExplanationEn:  "The antonym of happy is sad.",
		ExplanationHi:  "Happy का विपरीतार्थी शब्द sad है।",
		ExamType:       "SSC",
	},
	{
		TemplateID:     "diag-eng-03",
		Subject:        model.SubjectEnglish,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "Fill in the blank: The meeting was _____ due to rain.",
		QuestionTextHi: "रिक्त स्थान भरें: बारिश के कारण बैठक _____ थी।",
		OptionsEn:      []string{"called off", "called on", "called up", "called for"},
		OptionsHi:      []string{"रद्द कर दी गई", "बुलाई गई", "फोन किया गया", "मांग की गई"},
		CorrectAnswer:  0,
		ExplanationEn:  "'Called off' means cancelled or postponed.",
		ExplanationHi:  "'Called off' का अर्थ है रद्द या स्थगित करना।",
		ExamType:       "Banking",
	},
	{
		TemplateID:     "diag-gk-01",
		Subject:        model.SubjectGeneralKnowledge,
		Difficulty:     model.DifficultyBeginner,
		QuestionTextEn: "Who is the current President of India (as of 2024)?",
		QuestionTextHi: "भारत के वर्तमान राष्ट्रपति कौन हैं (2024 तक)?",
		OptionsEn:      []string{"Ram Nath Kovind", "Droupadi Murmu", "Pranab Mukherjee", "A.P.J. Abdul Kalam"},
		OptionsHi:      []string{"राम नाथ कोविंद", "द्रौपदी मुर्मू", "प्रणब मुखर्जी", "ए.पी.जे. अब्दुल कलाम"},
		CorrectAnswer:  1,
		ExplanationEn:  "Droupadi Murmu is the current President of India, serving since July 2022.",
		ExplanationHi:  "द्रौपदी मुर्मू भारत की वर्तमान राष्ट्रपति हैं, जो जुलाई 2022 से सेवा कर रही हैं।",
		ExamType:       "State PSC",
	},
	{
		TemplateID:     "diag-gk-02",
		Subject:        model.SubjectGeneralKnowledge,
		Difficulty:     model.DifficultyBeginner,
		QuestionTextEn: "What is the capital of India?",
		QuestionTextHi: "भारत की राजधानी क्या है?",
		OptionsEn:      []string{"Mumbai", "New Delhi", "Kolkata", "Chennai"},
		OptionsHi:      []string{"मुंबई", "नई दिल्ली", "कोलकाता", "चेन्नई"},
		CorrectAnswer:  1,
		ExplanationEn:  "New Delhi is the capital of India.",
		ExplanationHi:  "नई दिल्ली भारत की राजधानी है।",
		ExamType:       "SSC",
	},
	{
		TemplateID:     "diag-gk-03",
		Subject:        model.SubjectGeneralKnowledge,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "Which river is known as the 'Ganga of South India'?",
		QuestionTextHi: "कौन सी नदी को 'दक्षिण भारत की गंगा' कहा जाता है?",
		OptionsEn:      []string{"Krishna", "Godavari", "Cauvery", "Tungabhadra"},
		OptionsHi:      []string{"कृष्णा", "गोदावरी", "कावेरी", "तुंगभद्रा"},
		CorrectAnswer:  1,
		ExplanationEn:  "Godavari is known as the 'Ganga of South India' due to its length and cultural significance.",
		ExplanationHi:  "गोदावरी को इसकी लंबाई और सांस्कृतिक महत्व के कारण 'दक्षिण भारत की गंगा' कहा जाता है।",
		ExamType:       "State PSC",
	},
}

// StudyPlanPreset 学习者还没有技能档案时使用的预设学习计划。
type StudyPlanPreset struct {
	Subjects    []model.Subject
	Description string
	Difficulty  string
}

var studyPlanPresets = []StudyPlanPreset{
	{
		Subjects:    []model.Subject{model.SubjectQuantitative, model.SubjectReasoning},
		Description: "Focus on basic arithmetic and logical reasoning",
		Difficulty:  "beginner",
	},
	{
		Subjects:    []model.Subject{model.SubjectEnglish, model.SubjectGeneralKnowledge},
		Description: "Improve vocabulary and current affairs knowledge",
		Difficulty:  "intermediate",
	},
	{
		Subjects:    []model.Subject{model.SubjectQuantitative, model.SubjectEnglish, model.SubjectReasoning},
		Description: "Balanced practice across all subjects",
		Difficulty:  "mixed",
	},
}

// adaptiveCatalog LLM出题失败时的回退题库，按考试类型分组编写。
var adaptiveCatalog = []Template{
	// SSC
	{
		TemplateID:     "adpt-ssc-01",
		Subject:        model.SubjectQuantitative,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "What is 15% of 240?",
		QuestionTextHi: "240 का 15% क्या है?",
		OptionsEn:      []string{"30", "36", "40", "45"},
		OptionsHi:      []string{"30", "36", "40", "45"},
		CorrectAnswer:  1,
		ExplanationEn:  "15% of 240 = (15/100) × 240 = 36",
		ExplanationHi:  "240 का 15% = (15/100) × 240 = 36",
		ExamType:       "SSC",
	},
	{
		TemplateID:     "adpt-ssc-02",
		Subject:        model.SubjectReasoning,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "Find the next number in series: 2, 6, 12, 20, ?",
		QuestionTextHi: "श्रृंखला में अगली संख्या ज्ञात करें: 2, 6, 12, 20, ?",
		OptionsEn:      []string{"28", "30", "32", "34"},
		OptionsHi:      []string{"28", "30", "32", "34"},
		CorrectAnswer:  1,
		ExplanationEn:  "Pattern: n(n+1), so 5×6 = 30",
		ExplanationHi:  "पैटर्न: n(n+1), इसलिए 5×6 = 30",
		ExamType:       "SSC",
	},
	{
		TemplateID:     "adpt-ssc-03",
		Subject:        model.SubjectEnglish,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "Choose the correct synonym for 'Abundant':",
		QuestionTextHi: "'Abundant' के लिए सही समानार्थी शब्द चुनें:",
		OptionsEn:      []string{"Scarce", "Plentiful", "Rare", "Limited"},
		OptionsHi:      []string{"कम", "प्रचुर", "दुर्लभ", "सीमित"},
		CorrectAnswer:  1,
		ExplanationEn:  "Abundant means existing in large quantities; plentiful",
		ExplanationHi:  "Abundant का अर्थ है बड़ी मात्रा में मौजूद; प्रचुर",
		ExamType:       "SSC",
	},
	{
		TemplateID:     "adpt-ssc-04",
		Subject:        model.SubjectGeneralKnowledge,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "Who is known as the 'Father of the Indian Constitution'?",
		QuestionTextHi: "किसे 'भारतीय संविधान के पिता' के रूप में जाना जाता है?",
		OptionsEn:      []string{"Mahatma Gandhi", "Jawaharlal Nehru", "Dr. B.R. Ambedkar", "Sardar Patel"},
		OptionsHi:      []string{"महात्मा गांधी", "जवाहरलाल नेहरू", "डॉ. बी.आर. अंबेडकर", "सरदार पटेल"},
		CorrectAnswer:  2,
		ExplanationEn:  "Dr. B.R. Ambedkar was the chairman of the Drafting Committee",
		ExplanationHi:  "डॉ. बी.आर. अंबेडकर मसौदा समिति के अध्यक्ष थे",
		ExamType:       "SSC",
	},
	{
		TemplateID:     "adpt-ssc-05",
		Subject:        model.SubjectQuantitative,
		Difficulty:     model.DifficultyAdvanced,
		QuestionTextEn: "If a train 150m long passes a platform 300m long in 18 seconds, find its speed in km/h.",
		QuestionTextHi: "यदि 150m लंबी ट्रेन 300m लंबे प्लेटफॉर्म को 18 सेकंड में पार करती है, तो उसकी गति km/h में ज्ञात करें।",
		OptionsEn:      []string{"60", "75", "90", "100"},
		OptionsHi:      []string{"60", "75", "90", "100"},
		CorrectAnswer:  2,
		ExplanationEn:  "Total distance = 150+300 = 450m, Speed = 450/18 = 25 m/s = 90 km/h",
		ExplanationHi:  "कुल दूरी = 150+300 = 450m, गति = 450/18 = 25 m/s = 90 km/h",
		ExamType:       "SSC",
	},

	// Banking
	{
		TemplateID:     "adpt-bank-01",
		Subject:        model.SubjectQuantitative,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "A sum of money doubles itself in 5 years at simple interest. In how many years will it become 4 times?",
		QuestionTextHi: "एक राशि साधारण ब्याज पर 5 वर्ष में दोगुनी हो जाती है। कितने वर्षों में यह 4 गुनी हो जाएगी?",
		OptionsEn:      []string{"10 years", "15 years", "20 years", "25 years"},
		OptionsHi:      []string{"10 वर्ष", "15 वर्ष", "20 वर्ष", "25 वर्ष"},
		CorrectAnswer:  1,
		ExplanationEn:  "If money doubles in 5 years, rate = 20%. To become 4 times, it needs 15 years",
		ExplanationHi:  "यदि पैसा 5 वर्ष में दोगुना होता है, तो दर = 20%। 4 गुना होने के लिए 15 वर्ष चाहिए",
		ExamType:       "Banking",
	},
	{
		TemplateID:     "adpt-bank-02",
		Subject:        model.SubjectReasoning,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "In a certain code, 'COMPUTER' is written as 'RFUVQNPC'. How is 'MEDICINE' written in that code?",
		QuestionTextHi: "एक निश्चित कोड में 'COMPUTER' को 'RFUVQNPC' लिखा जाता है। उस कोड में 'MEDICINE' कैसे लिखा जाएगा?",
		OptionsEn:      []string{"MFEDJJOE", "EOJDEJFM", "MJDJEOFE", "EOJDJEFM"},
		OptionsHi:      []string{"MFEDJJOE", "EOJDEJFM", "MJDJEOFE", "EOJDJEFM"},
		CorrectAnswer:  1,
		ExplanationEn:  "Each letter is replaced by the letter at the same position from the end of alphabet",
		ExplanationHi:  "प्रत्येक अक्षर को वर्णमाला के अंत से समान स्थिति के अक्षर से बदला जाता है",
		ExamType:       "Banking",
	},
	{
		TemplateID:     "adpt-bank-03",
		Subject:        model.SubjectEnglish,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "Choose the correctly spelled word:",
		QuestionTextHi: "सही वर्तनी वाला शब्द चुनें:",
		OptionsEn:      []string{"Accommodation", "Acommodation", "Accomodation", "Acomodation"},
		OptionsHi:      []string{"Accommodation", "Acommodation", "Accomodation", "Acomodation"},
		CorrectAnswer:  0,
		ExplanationEn:  "Accommodation has double 'c' and double 'm'",
		ExplanationHi:  "Accommodation में दो 'c' और दो 'm' हैं",
		ExamType:       "Banking",
	},
	{
		TemplateID:     "adpt-bank-04",
		Subject:        model.SubjectGeneralKnowledge,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "Which bank is known as the 'Banker's Bank' in India?",
		QuestionTextHi: "भारत में किस बैंक को 'बैंकरों का बैंक' कहा जाता है?",
		OptionsEn:      []string{"SBI", "RBI", "HDFC", "ICICI"},
		OptionsHi:      []string{"SBI", "RBI", "HDFC", "ICICI"},
		CorrectAnswer:  1,
		ExplanationEn:  "RBI (Reserve Bank of India) is the central bank and banker's bank",
		ExplanationHi:  "RBI (भारतीय रिजर्व बैंक) केंद्रीय बैंक और बैंकरों का बैंक है",
		ExamType:       "Banking",
	},
	{
		TemplateID:     "adpt-bank-05",
		Subject:        model.SubjectQuantitative,
		Difficulty:     model.DifficultyAdvanced,
		QuestionTextEn: "A man invests Rs. 10,000 at 10% compound interest for 2 years. What is the compound interest?",
		QuestionTextHi: "एक व्यक्ति 2 वर्ष के लिए 10% चक्रवृद्धि ब्याज पर 10,000 रुपये निवेश करता है। चक्रवृद्धि ब्याज क्या है?",
		OptionsEn:      []string{"Rs. 2,100", "Rs. 2,200", "Rs. 2,300", "Rs. 2,400"},
		OptionsHi:      []string{"2,100 रुपये", "2,200 रुपये", "2,300 रुपये", "2,400 रुपये"},
		CorrectAnswer:  0,
		ExplanationEn:  "CI = P[(1+r/100)^n - 1] = 10000[(1.1)^2 - 1] = 10000[1.21 - 1] = 2100",
		ExplanationHi:  "चक्रवृद्धि ब्याज = P[(1+r/100)^n - 1] = 10000[(1.1)^2 - 1] = 2100",
		ExamType:       "Banking",
	},

	// State PSC
	{
		TemplateID:     "adpt-psc-01",
		Subject:        model.SubjectQuantitative,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "The average of 5 numbers is 20. If one number is excluded, the average becomes 18. What is the excluded number?",
		QuestionTextHi: "5 संख्याओं का औसत 20 है। यदि एक संख्या को हटा दिया जाए, तो औसत 18 हो जाता है। हटाई गई संख्या क्या है?",
		OptionsEn:      []string{"26", "28", "30", "32"},
		OptionsHi:      []string{"26", "28", "30", "32"},
		CorrectAnswer:  1,
		ExplanationEn:  "Sum of 5 numbers = 100, Sum of 4 numbers = 72, Excluded number = 100-72 = 28",
		ExplanationHi:  "5 संख्याओं का योग = 100, 4 संख्याओं का योग = 72, हटाई गई संख्या = 28",
		ExamType:       "State PSC",
	},
	{
		TemplateID:     "adpt-psc-02",
		Subject:        model.SubjectReasoning,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "If 'PEN' is coded as 'QFO', then 'INK' will be coded as:",
		QuestionTextHi: "यदि 'PEN' को 'QFO' के रूप में कोड किया जाता है, तो 'INK' को कैसे कोड किया जाएगा:",
		OptionsEn:      []string{"JOL", "JOM", "JON", "JOP"},
		OptionsHi:      []string{"JOL", "JOM", "JON", "JOP"},
		CorrectAnswer:  0,
		ExplanationEn:  "Each letter is moved one position forward in the alphabet",
		ExplanationHi:  "प्रत्येक अक्षर वर्णमाला में एक स्थान आगे बढ़ाया जाता है",
		ExamType:       "State PSC",
	},
	{
		TemplateID:     "adpt-psc-03",
		Subject:        model.SubjectEnglish,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "Choose the correct antonym for 'Benevolent':",
		QuestionTextHi: "'Benevolent' के लिए सही विलोम शब्द चुनें:",
		OptionsEn:      []string{"Kind", "Generous", "Malevolent", "Charitable"},
		OptionsHi:      []string{"दयालु", "उदार", "दुर्भावनापूर्ण", "दानशील"},
		CorrectAnswer:  2,
		ExplanationEn:  "Benevolent means kind and generous, so malevolent (evil) is its antonym",
		ExplanationHi:  "Benevolent का अर्थ दयालु और उदार है, इसलिए malevolent (दुर्भावनापूर्ण) इसका विलोम है",
		ExamType:       "State PSC",
	},
	{
		TemplateID:     "adpt-psc-04",
		Subject:        model.SubjectGeneralKnowledge,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "Which state is known as the 'Land of Five Rivers'?",
		QuestionTextHi: "किस राज्य को 'पांच नदियों की भूमि' कहा जाता है?",
		OptionsEn:      []string{"Punjab", "Haryana", "Uttar Pradesh", "Rajasthan"},
		OptionsHi:      []string{"पंजाब", "हरियाणा", "उत्तर प्रदेश", "राजस्थान"},
		CorrectAnswer:  0,
		ExplanationEn:  "Punjab means 'five waters' - the land of five rivers",
		ExplanationHi:  "पंजाब का अर्थ 'पांच पानी' है - पांच नदियों की भूमि",
		ExamType:       "State PSC",
	},
	{
		TemplateID:     "adpt-psc-05",
		Subject:        model.SubjectQuantitative,
		Difficulty:     model.DifficultyAdvanced,
		QuestionTextEn: "A rectangular field is 40m long and 30m wide. A path 2m wide runs around it. Find the area of the path.",
		QuestionTextHi: "एक आयताकार मैदान 40m लंबा और 30m चौड़ा है। इसके चारों ओर 2m चौड़ा रास्ता है। रास्ते का क्षेत्रफल ज्ञात करें।",
		OptionsEn:      []string{"296 sq m", "300 sq m", "304 sq m", "308 sq m"},
		OptionsHi:      []string{"296 वर्ग मी", "300 वर्ग मी", "304 वर्ग मी", "308 वर्ग मी"},
		CorrectAnswer:  0,
		ExplanationEn:  "Outer area = 44×34 = 1496, Inner area = 40×30 = 1200, Path area = 1496-1200 = 296",
		ExplanationHi:  "बाहरी क्षेत्र = 44×34 = 1496, आंतरिक क्षेत्र = 40×30 = 1200, रास्ते का क्षेत्र = 296",
		ExamType:       "State PSC",
	},

	// Railway
	{
		TemplateID:     "adpt-rail-01",
		Subject:        model.SubjectQuantitative,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "A train covers 120 km in 2 hours. What is its speed in m/s?",
		QuestionTextHi: "एक ट्रेन 2 घंटे में 120 किमी की दूरी तय करती है। m/s में इसकी गति क्या है?",
		OptionsEn:      []string{"16.67 m/s", "20 m/s", "25 m/s", "30 m/s"},
		OptionsHi:      []string{"16.67 m/s", "20 m/s", "25 m/s", "30 m/s"},
		CorrectAnswer:  0,
		ExplanationEn:  "Speed = 120/2 = 60 km/h = 60×1000/3600 = 16.67 m/s",
		ExplanationHi:  "गति = 120/2 = 60 km/h = 60×1000/3600 = 16.67 m/s",
		ExamType:       "Railway",
	},
	{
		TemplateID:     "adpt-rail-02",
		Subject:        model.SubjectReasoning,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "If 'TRAIN' is coded as 'USBIJ', then 'PLANE' will be coded as:",
		QuestionTextHi: "यदि 'TRAIN' को 'USBIJ' के रूप में कोड किया जाता है, तो 'PLANE' को कैसे कोड किया जाएगा:",
		OptionsEn:      []string{"QMBOF", "QNBOF", "QMBOG", "QNBPF"},
		OptionsHi:      []string{"QMBOF", "QNBOF", "QMBOG", "QNBPF"},
		CorrectAnswer:  0,
		ExplanationEn:  "Each letter is moved one position forward in the alphabet",
		ExplanationHi:  "प्रत्येक अक्षर वर्णमाला में एक स्थान आगे बढ़ाया जाता है",
		ExamType:       "Railway",
	},
	{
		TemplateID:     "adpt-rail-03",
		Subject:        model.SubjectEnglish,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "Choose the correct meaning of 'Punctual':",
		QuestionTextHi: "'Punctual' का सही अर्थ चुनें:",
		OptionsEn:      []string{"Late", "On time", "Early", "Delayed"},
		OptionsHi:      []string{"देर से", "समय पर", "जल्दी", "विलंबित"},
		CorrectAnswer:  1,
		ExplanationEn:  "Punctual means being on time or prompt",
		ExplanationHi:  "Punctual का अर्थ समय पर या तुरंत होना है",
		ExamType:       "Railway",
	},
	{
		TemplateID:     "adpt-rail-04",
		Subject:        model.SubjectGeneralKnowledge,
		Difficulty:     model.DifficultyIntermediate,
		QuestionTextEn: "Which is the longest railway platform in India?",
		QuestionTextHi: "भारत में सबसे लंबा रेलवे प्लेटफॉर्म कौन सा है?",
		OptionsEn:      []string{"Gorakhpur", "Kollam", "Kharagpur", "Bhubaneswar"},
		OptionsHi:      []string{"गोरखपुर", "कोल्लम", "खड़गपुर", "भुवनेश्वर"},
		CorrectAnswer:  0,
		ExplanationEn:  "Gorakhpur Junction has the longest railway platform in India (1,366.33 m)",
		ExplanationHi:  "गोरखपुर जंक्शन में भारत का सबसे लंबा रेलवे प्लेटफॉर्म है (1,366.33 m)",
		ExamType:       "Railway",
	},
	{
		TemplateID:     "adpt-rail-05",
		Subject:        model.SubjectQuantitative,
		Difficulty:     model.DifficultyAdvanced,
		QuestionTextEn: "Two trains start from stations A and B towards each other. Train from A travels at 60 km/h and from B at 40 km/h. If they meet after 2 hours, find the distance between A and B.",
		QuestionTextHi: "दो ट्रेनें स्टेशन A और B से एक-दूसरे की ओर चलती हैं। A से ट्रेन 60 km/h और B से 40 km/h की गति से चलती है। यदि वे 2 घंटे बाद मिलती हैं, तो A और B के बीच की दूरी ज्ञात करें।",
		OptionsEn:      []string{"200 km", "220 km", "240 km", "260 km"},
		OptionsHi:      []string{"200 km", "220 km", "240 km", "260 km"},
		CorrectAnswer:  0,
		ExplanationEn:  "Relative speed = 60+40 = 100 km/h, Distance = 100×2 = 200 km",
		ExplanationHi:  "सापेक्ष गति = 60+40 = 100 km/h, दूरी = 100×2 = 200 km",
		ExamType:       "Railway",
	},
}
