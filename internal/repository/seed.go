package repository

import "safemit_training_backend/internal/model"

// seedModules returns the built-in training catalog used when no content
// file is configured. Mirrors the authored content of the SAFE-MIT pilot.
func seedModules() []model.TrainingModule {
	return []model.TrainingModule{
		{
			ID:              "mod-digital-safety",
			Title:           "Digital Safety Fundamentals",
			Description:     "Recognize online risks, protect personal information, and verify sources before trusting or sharing them.",
			Difficulty:      model.Beginner,
			TotalDuration:   5400,
			EnrollmentCount: 1247,
			Lessons: []model.Lesson{
				{
					ID:          "lesson-online-risks",
					Title:       "Understanding Online Risks",
					Description: "Common threats migrants face online: scams, fake job offers, and identity theft.",
					Duration:    1200,
					Order:       1,
					Content: []model.ContentUnit{
						{Type: model.UnitText, Content: "Online recruitment scams are among the most common entry points for exploitation. This lesson walks through real patterns reported across West and North Africa."},
						{Type: model.UnitVideo, Content: "https://media.safemit.org/training/online-risks-intro.mp4", Duration: 420},
						{Type: model.UnitText, Content: "A legitimate employer will never ask you to pay a recruitment fee, surrender your passport, or keep an offer secret from your family."},
					},
					Prerequisites:  []string{},
					CompletionRate: 86.4,
				},
				{
					ID:          "lesson-protect-data",
					Title:       "Protecting Your Personal Data",
					Description: "Practical steps to keep identity documents and accounts safe.",
					Duration:    1500,
					Order:       2,
					Content: []model.ContentUnit{
						{Type: model.UnitText, Content: "Your identity documents are valuable. Share copies only with verified authorities, and watermark scans with the date and purpose."},
						{Type: model.UnitImage, Content: "https://media.safemit.org/training/document-watermark-example.png"},
						{Type: model.UnitInteractive, Content: "Walk through a simulated app-permission screen and decide which permissions a money-transfer app actually needs."},
						{Type: model.UnitText, Content: "Use a separate email address for job applications, and enable two-step verification everywhere it is offered."},
					},
					Prerequisites:  []string{"lesson-online-risks"},
					CompletionRate: 71.9,
				},
				{
					ID:          "lesson-verify-sources",
					Title:       "Verifying Information Sources",
					Description: "How to check whether a job offer, visa service or news story is genuine.",
					Duration:    1800,
					Order:       3,
					Content: []model.ContentUnit{
						{Type: model.UnitText, Content: "Cross-check any offer against the official embassy or IOM country page. A real agency is registered and verifiable."},
						{Type: model.UnitVideo, Content: "https://media.safemit.org/training/verify-sources.mp4", Duration: 510},
					},
					Prerequisites:  []string{"lesson-online-risks", "lesson-protect-data"},
					CompletionRate: 63.2,
					Quiz: &model.Quiz{
						ID:           "quiz-digital-safety",
						LessonID:     "lesson-verify-sources",
						PassingScore: 70,
						TimeLimit:    10,
						Questions: []model.Question{
							{
								ID:            "q-recruitment-fee",
								Prompt:        "A recruiter asks you to pay a fee before receiving a contract. What should you do?",
								Type:          model.MultipleChoice,
								Options:       []string{"Pay it to secure the job quickly", "Refuse and report the recruiter", "Negotiate a lower fee", "Pay half now, half after arrival"},
								CorrectAnswer: model.SingleChoice(1),
								Explanation:   "Legitimate employers never charge recruitment fees. A fee request is a strong fraud signal.",
								Points:        10,
							},
							{
								ID:            "q-passport",
								Prompt:        "An employer may keep your passport for safekeeping once you start work.",
								Type:          model.TrueFalse,
								Options:       []string{"True", "False"},
								CorrectAnswer: model.SingleChoice(1),
								Explanation:   "Retaining a worker's passport is a recognized indicator of trafficking and forced labour.",
								Points:        5,
							},
							{
								ID:            "q-verify-offer",
								Prompt:        "Which of the following help verify a job offer? Select all that apply.",
								Type:          model.MultiSelect,
								Options:       []string{"Checking the company's official registration", "Contacting the embassy or IOM office", "Trusting the offer because a friend shared it", "Searching for the recruiter's name with the word 'scam'"},
								CorrectAnswer: model.MultiChoice(0, 1, 3),
								Explanation:   "Registration records, official offices, and scam searches are verifiable; a forwarded message is not evidence.",
								Points:        10,
							},
						},
					},
				},
			},
		},
		{
			ID:              "mod-safe-migration",
			Title:           "Planning Safe Migration",
			Description:     "Regular pathways, required documents, and the support services available before departure.",
			Difficulty:      model.Intermediate,
			TotalDuration:   7200,
			EnrollmentCount: 832,
			Lessons: []model.Lesson{
				{
					ID:          "lesson-regular-pathways",
					Title:       "Regular Migration Pathways",
					Description: "Visa categories, labour agreements, and how to apply through official channels.",
					Duration:    2400,
					Order:       1,
					Content: []model.ContentUnit{
						{Type: model.UnitText, Content: "Every destination country publishes its visa categories. This lesson maps the main labour pathways from Nigeria, Senegal, Morocco and Kenya."},
						{Type: model.UnitInteractive, Content: "Pick a destination and profession and see which visa categories could apply."},
					},
					Prerequisites:  []string{},
					CompletionRate: 78.1,
				},
				{
					ID:          "lesson-pre-departure",
					Title:       "Pre-Departure Checklist",
					Description: "Documents, contacts and registrations to complete before leaving.",
					Duration:    1900,
					Order:       2,
					Content: []model.ContentUnit{
						{Type: model.UnitText, Content: "Register with your embassy, keep certified copies of your documents with a trusted person, and save emergency contact numbers offline."},
						{Type: model.UnitVideo, Content: "https://media.safemit.org/training/pre-departure.mp4", Duration: 480},
						{Type: model.UnitText, Content: "Know the labour-rights hotline of your destination country before you travel, not after a problem starts."},
					},
					Prerequisites:  []string{"lesson-regular-pathways"},
					CompletionRate: 69.5,
					Quiz: &model.Quiz{
						ID:           "quiz-safe-migration",
						LessonID:     "lesson-pre-departure",
						PassingScore: 60,
						Questions: []model.Question{
							{
								ID:            "q-document-copies",
								Prompt:        "Who should hold certified copies of your identity documents while you travel?",
								Type:          model.MultipleChoice,
								Options:       []string{"Your recruiter", "A trusted family member or friend", "Nobody, copies are unsafe", "The transport company"},
								CorrectAnswer: model.SingleChoice(1),
								Explanation:   "A trusted person at home can help replace documents and alert authorities if contact is lost.",
								Points:        5,
							},
							{
								ID:            "q-embassy",
								Prompt:        "Registering with your embassy before departure makes consular help faster if something goes wrong.",
								Type:          model.TrueFalse,
								Options:       []string{"True", "False"},
								CorrectAnswer: model.SingleChoice(0),
								Explanation:   "Registration gives consular staff your itinerary and emergency contacts.",
								Points:        5,
							},
						},
					},
				},
			},
		},
	}
}
