package catalogue

func intPtr(v int) *int { return &v }

// SeedUniversities is the built-in dataset of covered institutions, used by
// the in-memory repo and the seed command.
func SeedUniversities() []University {
	return []University{
		{ID: "oxford", Name: "University of Oxford", Region: "South East"},
		{ID: "cambridge", Name: "University of Cambridge", Region: "East of England"},
		{ID: "lse", Name: "London School of Economics", Region: "London"},
		{ID: "imperial", Name: "Imperial College London", Region: "London"},
		{ID: "ucl", Name: "University College London", Region: "London"},
		{ID: "kcl", Name: "King's College London", Region: "London"},
		{ID: "warwick", Name: "University of Warwick", Region: "West Midlands"},
		{ID: "edinburgh", Name: "University of Edinburgh", Region: "Scotland"},
		{ID: "bristol", Name: "University of Bristol", Region: "South West"},
		{ID: "durham", Name: "Durham University", Region: "North East"},
		{ID: "bath", Name: "University of Bath", Region: "South West"},
		{ID: "st-andrews", Name: "University of St Andrews", Region: "Scotland"},
		{ID: "manchester", Name: "University of Manchester", Region: "North West"},
		{ID: "exeter", Name: "University of Exeter", Region: "South West"},
	}
}

// SeedCourses is the built-in course dataset.
func SeedCourses() []Course {
	return []Course{
		{
			ID: "oxford-cs", UniversityID: "oxford", Name: "Computer Science BA", Faculty: "Mathematical, Physical and Life Sciences",
			TypicalOffer: "A*AA / 42 points", MinThresholdIB: intPtr(42), MinThresholdTariff: intPtr(152),
			RequiredSubjects:  []string{"Mathematics"},
			PSExpectedSignals: []string{"mathematical problem solving", "independent programming projects", "algorithmic thinking"},
		},
		{
			ID: "oxford-ppe", UniversityID: "oxford", Name: "Philosophy, Politics and Economics BA", Faculty: "Social Sciences",
			TypicalOffer: "AAA / 41 points", MinThresholdIB: intPtr(41), MinThresholdTariff: intPtr(144),
			PSExpectedSignals: []string{"engagement with current affairs", "critical reading beyond the syllabus", "structured argument"},
		},
		{
			ID: "cambridge-natsci", UniversityID: "cambridge", Name: "Natural Sciences BA", Faculty: "Mathematical, Physical and Life Sciences",
			TypicalOffer: "A*A*A / 42 points", MinThresholdIB: intPtr(42), MinThresholdTariff: intPtr(160),
			RequiredSubjects:  []string{"Mathematics", "Chemistry"},
			PSExpectedSignals: []string{"scientific curiosity with evidence", "practical investigation", "reading around the subject"},
		},
		{
			ID: "cambridge-engineering", UniversityID: "cambridge", Name: "Engineering MEng", Faculty: "Engineering",
			TypicalOffer: "A*A*A / 42 points", MinThresholdIB: intPtr(42), MinThresholdTariff: intPtr(160),
			RequiredSubjects:  []string{"Mathematics", "Physics"},
			PSExpectedSignals: []string{"hands-on engineering projects", "mathematical rigour", "teamwork"},
		},
		{
			ID: "lse-economics", UniversityID: "lse", Name: "Economics BSc", Faculty: "Social Sciences",
			TypicalOffer: "A*AA / 42 points", MinThresholdIB: intPtr(42), MinThresholdTariff: intPtr(152),
			RequiredSubjects:  []string{"Mathematics"},
			PSExpectedSignals: []string{"quantitative reasoning", "interest in economic policy", "independent reading"},
		},
		{
			ID: "lse-law", UniversityID: "lse", Name: "Law LLB", Faculty: "Social Sciences",
			TypicalOffer: "A*AA / 42 points", MinThresholdIB: intPtr(42), MinThresholdTariff: intPtr(152),
			PSExpectedSignals: []string{"analytical writing", "engagement with legal issues", "debate or mooting"},
		},
		{
			ID: "imperial-computing", UniversityID: "imperial", Name: "Computing MEng", Faculty: "Engineering",
			TypicalOffer: "A*A*A / 41 points", MinThresholdIB: intPtr(41), MinThresholdTariff: intPtr(160),
			RequiredSubjects:  []string{"Mathematics"},
			PSExpectedSignals: []string{"software projects", "mathematical maturity", "curiosity about systems"},
		},
		{
			ID: "imperial-mech-eng", UniversityID: "imperial", Name: "Mechanical Engineering MEng", Faculty: "Engineering",
			TypicalOffer: "A*AA / 40 points", MinThresholdIB: intPtr(40), MinThresholdTariff: intPtr(152),
			RequiredSubjects:  []string{"Mathematics", "Physics"},
			PSExpectedSignals: []string{"practical making", "physics applied to real problems"},
		},
		{
			ID: "ucl-cs", UniversityID: "ucl", Name: "Computer Science BSc", Faculty: "Engineering",
			TypicalOffer: "A*A*A / 40 points", MinThresholdIB: intPtr(40), MinThresholdTariff: intPtr(160),
			RequiredSubjects:  []string{"Mathematics"},
			PSExpectedSignals: []string{"programming experience", "algorithmic thinking"},
		},
		{
			ID: "ucl-medicine", UniversityID: "ucl", Name: "Medicine MBBS", Faculty: "Medical Sciences",
			TypicalOffer: "A*AA / 39 points", MinThresholdIB: intPtr(39), MinThresholdTariff: intPtr(152),
			RequiredSubjects:  []string{"Biology", "Chemistry"},
			PSExpectedSignals: []string{"clinical work experience with reflection", "commitment to care", "scientific depth"},
		},
		{
			ID: "kcl-law", UniversityID: "kcl", Name: "Law LLB", Faculty: "Social Sciences",
			TypicalOffer: "A*AA / 35 points", MinThresholdIB: intPtr(35), MinThresholdTariff: intPtr(152),
			PSExpectedSignals: []string{"analytical writing", "interest in justice"},
		},
		{
			ID: "warwick-maths", UniversityID: "warwick", Name: "Mathematics BSc", Faculty: "Mathematical, Physical and Life Sciences",
			TypicalOffer: "A*A*A / 39 points", MinThresholdIB: intPtr(39), MinThresholdTariff: intPtr(160),
			RequiredSubjects:  []string{"Mathematics", "Further Mathematics"},
			PSExpectedSignals: []string{"olympiad or challenge problems", "proof and abstraction"},
		},
		{
			ID: "warwick-economics", UniversityID: "warwick", Name: "Economics BSc", Faculty: "Social Sciences",
			TypicalOffer: "A*AA / 38 points", MinThresholdIB: intPtr(38), MinThresholdTariff: intPtr(152),
			RequiredSubjects:  []string{"Mathematics"},
			PSExpectedSignals: []string{"quantitative reasoning", "economic intuition"},
		},
		{
			ID: "edinburgh-ai", UniversityID: "edinburgh", Name: "Artificial Intelligence BSc", Faculty: "Engineering",
			TypicalOffer: "AAA / 37 points", MinThresholdIB: intPtr(37), MinThresholdTariff: intPtr(144),
			RequiredSubjects:  []string{"Mathematics"},
			PSExpectedSignals: []string{"machine learning curiosity", "programming projects"},
		},
		{
			ID: "bristol-aero", UniversityID: "bristol", Name: "Aerospace Engineering MEng", Faculty: "Engineering",
			TypicalOffer: "A*AA / 38 points", MinThresholdIB: intPtr(38), MinThresholdTariff: intPtr(152),
			RequiredSubjects:  []string{"Mathematics", "Physics"},
			PSExpectedSignals: []string{"aviation or space enthusiasm grounded in physics"},
		},
		{
			ID: "durham-history", UniversityID: "durham", Name: "History BA", Faculty: "Arts and Humanities",
			TypicalOffer: "A*AA / 38 points", MinThresholdIB: intPtr(38), MinThresholdTariff: intPtr(152),
			PSExpectedSignals: []string{"source criticism", "reading beyond the syllabus"},
		},
		{
			ID: "bath-architecture", UniversityID: "bath", Name: "Architecture BSc", Faculty: "Engineering",
			TypicalOffer: "A*AA / 36 points", MinThresholdIB: intPtr(36), MinThresholdTariff: intPtr(152),
			PSExpectedSignals: []string{"design portfolio", "spatial awareness"},
		},
		{
			ID: "st-andrews-physics", UniversityID: "st-andrews", Name: "Physics MPhys", Faculty: "Mathematical, Physical and Life Sciences",
			TypicalOffer: "AAA / 38 points", MinThresholdIB: intPtr(38), MinThresholdTariff: intPtr(144),
			RequiredSubjects:  []string{"Mathematics", "Physics"},
			PSExpectedSignals: []string{"physical intuition", "independent investigation"},
		},
		{
			ID: "manchester-cs", UniversityID: "manchester", Name: "Computer Science BSc", Faculty: "Engineering",
			TypicalOffer: "A*AA / 36 points", MinThresholdIB: intPtr(36), MinThresholdTariff: intPtr(152),
			RequiredSubjects:  []string{"Mathematics"},
			PSExpectedSignals: []string{"programming projects", "problem solving"},
		},
		{
			ID: "exeter-psychology", UniversityID: "exeter", Name: "Psychology BSc", Faculty: "Medical Sciences",
			TypicalOffer: "AAB / 34 points", MinThresholdIB: intPtr(34), MinThresholdTariff: intPtr(136),
			PSExpectedSignals: []string{"research methods awareness", "empathy with evidence"},
		},
		{
			ID: "exeter-english", UniversityID: "exeter", Name: "English Literature BA", Faculty: "Arts and Humanities",
			TypicalOffer: "AAB / 32 points", MinThresholdIB: intPtr(32), MinThresholdTariff: intPtr(136),
			PSExpectedSignals: []string{"close reading", "authentic critical voice"},
		},
	}
}

// SeedPoolStats is the built-in historical pool dataset for a subset of
// courses. Distributions are normalized scores of past offer holders.
func SeedPoolStats() []PoolStat {
	return []PoolStat{
		{CourseID: "oxford-cs", SampleSize: 24, Distribution: []int{38, 39, 40, 40, 41, 41, 41, 42, 42, 42, 42, 43, 43, 43, 43, 43, 44, 44, 44, 44, 45, 45, 45, 45}},
		{CourseID: "lse-economics", SampleSize: 18, Distribution: []int{39, 40, 40, 41, 41, 42, 42, 42, 42, 43, 43, 43, 44, 44, 44, 45, 45, 45}},
		{CourseID: "ucl-cs", SampleSize: 15, Distribution: []int{37, 38, 39, 39, 40, 40, 41, 41, 41, 42, 42, 43, 43, 44, 45}},
		{CourseID: "warwick-maths", SampleSize: 12, Distribution: []int{37, 38, 38, 39, 39, 40, 40, 41, 42, 43, 44, 45}},
		{CourseID: "exeter-psychology", SampleSize: 10, Distribution: []int{31, 32, 33, 34, 34, 35, 36, 37, 38, 40}},
	}
}
