package outreach

var seedSessions = []SessionRequest{
	{
		Name:        "Gayatri Mam",
		Role:        "Motivational Speaker",
		Topic:       "Building Self Confidence",
		Date:        "2025-04-15",
		Time:        "10:00 AM",
		Duration:    "60 min",
		Description: "An interactive session on developing self-confidence and positive outlook.",
	},
	{
		Name:        "Dr. Rajan",
		Role:        "Psychologist",
		Topic:       "Emotional Well-being",
		Date:        "2025-04-18",
		Time:        "11:30 AM",
		Duration:    "90 min",
		Description: "Understanding and managing emotions for a balanced life.",
	},
	{
		Name:        "Priya Sharma",
		Role:        "Mentor",
		Topic:       "Career Guidance",
		Date:        "2025-04-20",
		Time:        "2:00 PM",
		Duration:    "120 min",
		Description: "Exploring various career paths and opportunities for young adults.",
	},
}

var seedTalents = []TalentRequest{
	{
		Name:         "Ram",
		Type:         "Singer",
		Bio:          "Ram has a soulful voice and performs both classical and modern songs.",
		Achievements: "Won first place in the district-level singing competition.",
	},
	{
		Name:         "Chellatha",
		Type:         "Storyteller",
		Bio:          "Chellatha captivates everyone with her imaginative stories and expressive narration.",
		Achievements: "Published a collection of short stories in the local newspaper.",
	},
	{
		Name:         "Mariyappan",
		Type:         "Self-defence",
		Bio:          "Mariyappan teaches valuable self-defence techniques to others.",
		Achievements: "Black belt in Karate and certified instructor.",
	},
}

// Seed loads the demo sessions and talents of the public site.
func (s *Service) Seed() error {
	for _, req := range seedSessions {
		if _, err := s.AddSession(req); err != nil {
			return err
		}
	}
	for _, req := range seedTalents {
		s.AddTalent(req)
	}
	return nil
}
