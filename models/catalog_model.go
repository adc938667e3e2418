package models

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// DefaultSubjects is the static subject catalog.
func DefaultSubjects() []Subject {
	return []Subject{
		{ID: "math", Name: "Mathematics", Category: "Sciences", Icon: "📐"},
		{ID: "physics", Name: "Physics", Category: "Sciences", Icon: "⚛️"},
		{ID: "chemistry", Name: "Chemistry", Category: "Sciences", Icon: "🧪"},
		{ID: "biology", Name: "Biology", Category: "Sciences", Icon: "🧬"},
		{ID: "french", Name: "French", Category: "Languages", Icon: "📚"},
		{ID: "english", Name: "English", Category: "Languages", Icon: "🇬🇧"},
		{ID: "arabic", Name: "Arabic", Category: "Languages", Icon: "📖"},
		{ID: "history", Name: "History", Category: "Humanities", Icon: "🏛️"},
		{ID: "philosophy", Name: "Philosophy", Category: "Humanities", Icon: "🤔"},
		{ID: "cs", Name: "Computer Science", Category: "Tech", Icon: "💻"},
		{ID: "economics", Name: "Economics", Category: "Business", Icon: "📈"},
	}
}

// DefaultTutors is the seed tutor catalog. Rating aggregates are
// externally supplied figures, never recomputed here.
func DefaultTutors() []Tutor {
	subjects := map[string]*Subject{}
	for _, s := range DefaultSubjects() {
		sub := s
		subjects[s.ID] = &sub
	}
	pick := func(ids ...string) []*Subject {
		out := make([]*Subject, 0, len(ids))
		for _, id := range ids {
			out = append(out, subjects[id])
		}
		return out
	}

	return []Tutor{
		{
			ID: "1", Name: "Yassine Ben Ali", Email: "yassine@enit.tn",
			Roles:    []string{"teacher", "learner"},
			Subjects: pick("math", "physics"),
			IsTopTeacher: true, RatingAverage: 4.9, RatingCount: 47,
			PricePerHour: floatPtr(18),
			Bio:          strPtr("Engineering student at ENIT with 3 years of tutoring experience. I make complex concepts simple!"),
			Availability: []TutorAvailability{
				{Day: "Monday", Time: "10:00-12:00", Location: strPtr("Tunis Centre")},
				{Day: "Wednesday", Time: "14:00-16:00", Location: strPtr("Online")},
			},
		},
		{
			ID: "2", Name: "Mariem Trabelsi", Email: "mariem@fst.tn",
			Roles:    []string{"teacher"},
			Subjects: pick("french", "philosophy"),
			IsTopTeacher: true, RatingAverage: 4.8, RatingCount: 52,
			PricePerHour: floatPtr(15),
			Bio:          strPtr("Literature student at FST. Passionate about French literature and philosophy."),
			Availability: []TutorAvailability{
				{Day: "Tuesday", Time: "13:00-17:00", Location: strPtr("La Marsa")},
				{Day: "Thursday", Time: "10:00-14:00", Location: strPtr("Online")},
			},
		},
		{
			ID: "3", Name: "Amine Bouazizi", Email: "amine@insat.tn",
			Roles:    []string{"teacher", "learner"},
			Subjects: pick("physics", "chemistry"),
			IsTopTeacher: false, RatingAverage: 4.6, RatingCount: 23,
			PricePerHour: floatPtr(12),
			Bio:          strPtr("Science enthusiast at INSAT. Helping others understand the universe!"),
			Availability: []TutorAvailability{
				{Day: "Monday", Time: "14:00-18:00", Location: strPtr("Sfax")},
			},
		},
		{
			ID: "4", Name: "Nour El Houda Jebali", Email: "nour@ihec.tn",
			Roles:    []string{"teacher"},
			Subjects: pick("english", "french"),
			IsTopTeacher: true, RatingAverage: 4.95, RatingCount: 38,
			PricePerHour: floatPtr(20),
			Bio:          strPtr("Business student at IHEC. Bilingual English-French, preparing for international exams."),
			Availability: []TutorAvailability{
				{Day: "Tuesday", Time: "09:00-13:00", Location: strPtr("Sousse")},
				{Day: "Saturday", Time: "10:00-14:00", Location: strPtr("Online")},
			},
		},
		{
			ID: "5", Name: "Mohamed Sahli", Email: "mohamed@esprit.tn",
			Roles:    []string{"teacher", "learner"},
			Subjects: pick("cs", "math"),
			IsTopTeacher: false, RatingAverage: 4.4, RatingCount: 15,
			PricePerHour: floatPtr(15),
			Bio:          strPtr("Computer science student at ESPRIT. Expert in programming and algorithms!"),
			Availability: []TutorAvailability{
				{Day: "Wednesday", Time: "15:00-17:00", Location: strPtr("Ariana")},
			},
		},
		{
			ID: "6", Name: "Fatma Gharbi", Email: "fatma@fmp.tn",
			Roles:    []string{"teacher"},
			Subjects: pick("biology", "chemistry"),
			IsTopTeacher: true, RatingAverage: 4.85, RatingCount: 41,
			PricePerHour: floatPtr(18),
			Bio:          strPtr("Medical student at FMP. Making biology and chemistry fun and easy to understand!"),
			Availability: []TutorAvailability{
				{Day: "Tuesday", Time: "10:00-14:00", Location: strPtr("Ben Arous")},
				{Day: "Thursday", Time: "10:00-14:00", Location: strPtr("Online")},
			},
		},
	}
}

// DefaultWaitingLearners seeds the learners currently looking for a
// group session.
func DefaultWaitingLearners() []WaitingLearner {
	return []WaitingLearner{
		{ID: "1", Name: "Youssef Ben Ali", Avatar: "YB", SubjectID: "math", WaitingSince: "2 hours"},
		{ID: "2", Name: "Fatma Trabelsi", Avatar: "FT", SubjectID: "math", WaitingSince: "30 min"},
		{ID: "3", Name: "Khaled Mansour", Avatar: "KM", SubjectID: "physics", WaitingSince: "1 hour"},
		{ID: "4", Name: "Rim Bouazizi", Avatar: "RB", SubjectID: "french", WaitingSince: "45 min"},
		{ID: "5", Name: "Amine Jebali", Avatar: "AJ", SubjectID: "english", WaitingSince: "15 min"},
	}
}

// DefaultStudyGroups seeds the study group listings.
func DefaultStudyGroups() []StudyGroup {
	return []StudyGroup{
		{
			ID: "1", SubjectID: "math", Title: "Calculus Study Session",
			Description: "Review group for integration and derivatives. Preparing for midterms together!",
			Members: []StudyGroupMember{
				{Name: "Youssef Ben Ali", Avatar: "YB"},
				{Name: "Fatma Trabelsi", Avatar: "FT"},
				{Name: "Khaled Mansour", Avatar: "KM"},
			},
			MaxMembers: 6, Date: "2024-01-20", Time: "15:00",
			Location: LocationOnline, LocationDetails: "Google Meet", Host: "Mariem Saidi",
		},
		{
			ID: "2", SubjectID: "physics", Title: "Mechanics Lab Review",
			Description: "Review of Newtonian mechanics exercises and applications for engineering students.",
			Members: []StudyGroupMember{
				{Name: "Rim Bouazizi", Avatar: "RB"},
				{Name: "Amine Jebali", Avatar: "AJ"},
			},
			MaxMembers: 5, Date: "2024-01-21", Time: "10:00",
			Location: LocationInPerson, LocationDetails: "National Library, Tunis", Host: "Nour Hamdi",
		},
		{
			ID: "3", SubjectID: "french", Title: "Essay Writing Workshop",
			Description: "Perfect your essay writing technique with practical exercises.",
			Members: []StudyGroupMember{
				{Name: "Sarra Chaabane", Avatar: "SC"},
			},
			MaxMembers: 4, Date: "2024-01-22", Time: "14:00",
			Location: LocationOnline, LocationDetails: "Zoom", Host: "Amir Mejri",
		},
		{
			ID: "4", SubjectID: "english", Title: "Speaking Practice",
			Description: "Improve your English speaking skills through conversation and debates.",
			Members: []StudyGroupMember{
				{Name: "Yasmine Gharbi", Avatar: "YG"},
				{Name: "Mohamed Riahi", Avatar: "MR"},
				{Name: "Ines Kacem", Avatar: "IK"},
				{Name: "Omar Sfaxi", Avatar: "OS"},
			},
			MaxMembers: 8, Date: "2024-01-23", Time: "17:00",
			Location: LocationInPerson, LocationDetails: "Literary Cafe, La Marsa", Host: "Sami Belhadj",
		},
	}
}
