package service

import "mindlift/internal/model"

func seedContacts() []model.EmergencyContact {
	return []model.EmergencyContact{
		{
			ID: "contact-1", Name: "National Suicide Prevention Lifeline", Number: "988",
			Description: "24/7 crisis support for anyone in emotional distress or suicidal crisis",
			Type:        "call", Category: "crisis", Available247: true, Priority: 1,
		},
		{
			ID: "contact-2", Name: "Crisis Text Line", Number: "741741",
			Description: "Free, 24/7 support via text message. Text HOME to start",
			Type:        "text", Category: "crisis", Available247: true, Priority: 2,
		},
		{
			ID: "contact-3", Name: "SAMHSA National Helpline", Number: "1-800-662-4357",
			Description: "Treatment referral and information service for mental health and substance abuse",
			Type:        "call", Category: "national", Available247: true, Priority: 3,
		},
		{
			ID: "contact-4", Name: "National Sexual Assault Hotline", Number: "1-800-656-4673",
			Description: "24/7 confidential support for survivors of sexual assault",
			Type:        "call", Category: "crisis", Available247: true, Priority: 4,
		},
		{
			ID: "contact-5", Name: "National Domestic Violence Hotline", Number: "1-800-799-7233",
			Description: "24/7 confidential support for domestic violence survivors",
			Type:        "call", Category: "crisis", Available247: true, Priority: 5,
		},
		{
			ID: "contact-6", Name: "Campus Counseling Center", Number: "(555) 123-4567",
			Description: "On-campus mental health services for students",
			Type:        "call", Category: "campus", Available247: false, Priority: 6,
		},
		{
			ID: "contact-7", Name: "Campus Safety Emergency", Number: "(555) 123-9999",
			Description: "Campus security and emergency response",
			Type:        "call", Category: "campus", Available247: true, Priority: 7,
		},
	}
}

func seedResources() []model.CampusResource {
	return []model.CampusResource{
		{
			ID: "resource-1", Name: "Student Health Center",
			Location: "Building A, 2nd Floor", Hours: "Mon-Fri: 8AM-6PM",
			Phone: "(555) 123-4568", Email: "health@university.edu",
			Services:        []string{"Medical Care", "Mental Health Screening", "Crisis Intervention", "Referrals"},
			WalkInAvailable: true, AppointmentRequired: false,
		},
		{
			ID: "resource-2", Name: "Counseling & Psychological Services",
			Location: "Student Union, Room 201", Hours: "Mon-Fri: 9AM-5PM",
			Phone: "(555) 123-4569", Email: "counseling@university.edu",
			Services:        []string{"Individual Therapy", "Group Therapy", "Crisis Counseling", "Psychiatric Services"},
			WalkInAvailable: true, AppointmentRequired: true,
		},
		{
			ID: "resource-3", Name: "Peer Support Groups",
			Location: "Wellness Center, Various Rooms", Hours: "Varies by group",
			Phone: "(555) 123-4570", Email: "peersupport@university.edu",
			Services:        []string{"Anxiety Support", "Depression Support", "LGBTQ+ Support", "Grief Support"},
			WalkInAvailable: false, AppointmentRequired: false,
		},
		{
			ID: "resource-4", Name: "Academic Success Center",
			Location: "Library, 3rd Floor", Hours: "Mon-Fri: 9AM-7PM",
			Phone: "(555) 123-4571", Email: "success@university.edu",
			Services:        []string{"Academic Coaching", "Stress Management", "Time Management", "Study Skills"},
			WalkInAvailable: true, AppointmentRequired: false,
		},
		{
			ID: "resource-5", Name: "Campus Ministry",
			Location: "Interfaith Center", Hours: "Mon-Fri: 10AM-6PM",
			Phone: "(555) 123-4572", Email: "ministry@university.edu",
			Services:        []string{"Spiritual Counseling", "Meditation Groups", "Crisis Support", "Community Building"},
			WalkInAvailable: true, AppointmentRequired: false,
		},
	}
}
