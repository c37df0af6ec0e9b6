package service

import (
	"time"

	"mindlift/internal/model"
)

// seedArticles is the read-only catalog loaded at startup. IDs are stable so
// bookmarks survive within a process lifetime.
func seedArticles() []model.Article {
	return []model.Article{
		{
			ID:          "article-1",
			Title:       "Understanding Anxiety in College",
			Description: "Learn about common anxiety triggers for students and practical coping strategies.",
			Content: `College can be an exciting time, but it also brings unique challenges that can trigger anxiety. Common triggers include heavy workloads and tight deadlines, fear of failure, imposter syndrome, making new friends, and living away from home for the first time.

Practical coping strategies: practice the 4-7-8 breathing technique (inhale 4, hold 7, exhale 8), break large tasks into smaller steps, build a support network through clubs and campus events, and keep healthy habits around exercise, nutrition, and sleep.

If anxiety is interfering with your daily life, academic performance, or relationships, reach out to your campus counseling center. Seeking help is a sign of strength, not weakness.`,
			Category:    "Anxiety",
			ReadTime:    "5 min read",
			Image:       "/calm-student-reading-in-library.jpg",
			Author:      "Dr. Sarah Johnson",
			PublishedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Tags:        []string{"anxiety", "coping", "college", "mental health"},
			Featured:    true,
		},
		{
			ID:          "article-2",
			Title:       "Building Healthy Sleep Habits",
			Description: "Discover how proper sleep hygiene can significantly improve your mental health.",
			Content: `Quality sleep is fundamental to mental health, academic performance, and overall well-being. Good sleep improves memory consolidation, focus, mood stability, and stress management.

Create a sleep sanctuary: keep your room cool, use blackout curtains, and minimize noise. Establish a consistent schedule with a 30-minute wind-down routine, and avoid screens for an hour before bed. Watch out for caffeine within six hours of bedtime and late-night studying on devices.

If sleep problems persist despite good habits, talk to a healthcare provider about possible underlying sleep disorders.`,
			Category:    "Wellness",
			ReadTime:    "7 min read",
			Image:       "/peaceful-bedroom-with-soft-lighting.jpg",
			Author:      "Dr. Michael Chen",
			PublishedAt: time.Date(2024, 1, 12, 14, 30, 0, 0, time.UTC),
			Tags:        []string{"sleep", "wellness", "habits", "mental health"},
			Featured:    true,
		},
		{
			ID:          "article-3",
			Title:       "Managing Academic Stress",
			Description: "Effective techniques for handling exam pressure and academic expectations.",
			Content: `Academic stress left unmanaged hurts both mental health and grades. Common sources are exam anxiety, heavy course loads, competition with peers, and fear of disappointing others.

Manage it with time-management strategies (prioritize tasks, break projects into steps, use focused study sessions), active learning techniques, and regular breaks. Notice physical symptoms like headaches, fatigue, and appetite changes; they are signals, not weaknesses.

When stress feels constant or overwhelming, campus counseling services can help you build a sustainable plan.`,
			Category:    "Stress",
			ReadTime:    "6 min read",
			Image:       "/organized-study-desk-with-planner.jpg",
			Author:      "Dr. Emily Rodriguez",
			PublishedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			Tags:        []string{"stress", "academics", "exams", "time management"},
			Featured:    false,
		},
		{
			ID:          "article-4",
			Title:       "The Power of Mindfulness for Students",
			Description: "Simple mindfulness practices you can use between classes to stay grounded.",
			Content: `Mindfulness is paying attention to the present moment without judgment. For students it reduces rumination, improves concentration, and softens test anxiety.

Start small: one minute of focused breathing before a lecture, a mindful walk between classes, or a body scan before sleep. Consistency matters more than duration.

Apps and campus meditation groups can help you build the habit, but nothing is required beyond your own attention.`,
			Category:    "Mindfulness",
			ReadTime:    "4 min read",
			Image:       "/student-meditating-on-campus-lawn.jpg",
			Author:      "Dr. Aisha Patel",
			PublishedAt: time.Date(2024, 1, 8, 16, 0, 0, 0, time.UTC),
			Tags:        []string{"mindfulness", "meditation", "focus", "mental health"},
			Featured:    true,
		},
		{
			ID:          "article-5",
			Title:       "Recognizing Depression: When Sadness Becomes Something More",
			Description: "How to tell the difference between a rough patch and depression, and where to turn.",
			Content: `Everyone has bad days, but depression is different: persistent low mood, loss of interest in things you used to enjoy, changes in sleep and appetite, difficulty concentrating, and feelings of worthlessness lasting two weeks or more.

Depression is common among students and highly treatable. Talk to someone you trust, reach out to campus counseling, and remember that asking for help early makes recovery easier.

If you ever have thoughts of harming yourself, contact a crisis line or emergency services immediately.`,
			Category:    "Depression",
			ReadTime:    "8 min read",
			Image:       "/supportive-friends-talking-on-bench.jpg",
			Author:      "Dr. James Wilson",
			PublishedAt: time.Date(2024, 1, 5, 11, 0, 0, 0, time.UTC),
			Tags:        []string{"depression", "mental health", "support", "warning signs"},
			Featured:    false,
		},
		{
			ID:          "article-6",
			Title:       "Staying Connected: Social Wellness in a Digital World",
			Description: "Why real connection matters for mental health and how to nurture it.",
			Content: `Loneliness is one of the strongest predictors of poor mental health in students, and endless scrolling is not the same as connection.

Nurture real relationships: schedule regular time with friends, join one club or group that meets in person, and practice reaching out first. Small consistent investments in relationships pay off in resilience during stressful periods.

Social media is fine in moderation; notice when comparison or doomscrolling leaves you feeling worse and set boundaries accordingly.`,
			Category:    "Wellness",
			ReadTime:    "5 min read",
			Image:       "/friends-laughing-in-dorm-common-room.jpg",
			Author:      "Dr. Maria Gonzalez",
			PublishedAt: time.Date(2024, 1, 3, 13, 0, 0, 0, time.UTC),
			Tags:        []string{"social", "connection", "wellness", "loneliness"},
			Featured:    false,
		},
	}
}
