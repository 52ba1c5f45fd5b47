package questions

import "github.com/monthsbackend/internal/models"

// CatalogQuestion is one entry of the built-in seed set, before it gets a
// database identity.
type CatalogQuestion struct {
	Text     string
	Category models.QuestionCategory
}

// Catalog is the built-in question set loaded by the migrate tool's seed
// command. All questions start active.
var Catalog = []CatalogQuestion{
	// Gratitude
	{"What made you smile today?", models.CategoryGratitude},
	{"What are three things you're grateful for right now?", models.CategoryGratitude},
	{"Who made a positive difference in your day?", models.CategoryGratitude},
	{"What simple pleasure did you enjoy today?", models.CategoryGratitude},
	{"What's something beautiful you noticed today?", models.CategoryGratitude},
	{"What comfort do you often take for granted?", models.CategoryGratitude},
	{"What ability or skill are you thankful to have?", models.CategoryGratitude},
	{"What memory are you most grateful for?", models.CategoryGratitude},
	{"What technology made your life easier today?", models.CategoryGratitude},
	{"What food did you enjoy eating today?", models.CategoryGratitude},
	{"What moment of peace did you experience today?", models.CategoryGratitude},
	{"What about your home makes you feel grateful?", models.CategoryGratitude},
	{"What aspect of your health are you thankful for?", models.CategoryGratitude},
	{"What unexpected kindness did you receive recently?", models.CategoryGratitude},
	{"What lesson are you grateful to have learned?", models.CategoryGratitude},

	// Growth
	{"What lesson did you learn this week?", models.CategoryGrowth},
	{"What skill would you like to develop further?", models.CategoryGrowth},
	{"What mistake taught you something valuable?", models.CategoryGrowth},
	{"How have you grown as a person this year?", models.CategoryGrowth},
	{"What habit are you trying to build?", models.CategoryGrowth},
	{"What area of your life needs more attention?", models.CategoryGrowth},
	{"What knowledge do you wish you had gained sooner?", models.CategoryGrowth},
	{"What's one thing you could do better tomorrow?", models.CategoryGrowth},
	{"What feedback have you received that helped you improve?", models.CategoryGrowth},
	{"What book, podcast, or article taught you something new?", models.CategoryGrowth},
	{"What challenge helped you become stronger?", models.CategoryGrowth},
	{"What old belief have you reconsidered recently?", models.CategoryGrowth},
	{"What would your ideal self do differently?", models.CategoryGrowth},
	{"What's something you used to struggle with but have improved at?", models.CategoryGrowth},
	{"What learning opportunity are you excited about?", models.CategoryGrowth},

	// Reflection
	{"What would you tell your younger self?", models.CategoryReflection},
	{"What's on your mind right now?", models.CategoryReflection},
	{"How are you really feeling today?", models.CategoryReflection},
	{"What's something you've been avoiding?", models.CategoryReflection},
	{"What decision are you currently facing?", models.CategoryReflection},
	{"What do you need to let go of?", models.CategoryReflection},
	{"What's been weighing on your heart lately?", models.CategoryReflection},
	{"What brings you the most peace?", models.CategoryReflection},
	{"What's something you need to forgive yourself for?", models.CategoryReflection},
	{"What would make today meaningful?", models.CategoryReflection},
	{"What's your current state of mind in one word?", models.CategoryReflection},
	{"What do you wish others understood about you?", models.CategoryReflection},
	{"What are you most proud of about yourself?", models.CategoryReflection},
	{"What's something you've been putting off that you know you should do?", models.CategoryReflection},
	{"How did you take care of yourself today?", models.CategoryReflection},
	{"What boundaries do you need to set or maintain?", models.CategoryReflection},
	{"What's draining your energy lately?", models.CategoryReflection},
	{"What's giving you energy lately?", models.CategoryReflection},
	{"If today was your last day, what would you want to do?", models.CategoryReflection},
	{"What season of life are you in right now?", models.CategoryReflection},

	// Future
	{"Where do you see yourself in 5 years?", models.CategoryFuture},
	{"What are you looking forward to?", models.CategoryFuture},
	{"What goal are you working toward?", models.CategoryFuture},
	{"What would you do if you knew you couldn't fail?", models.CategoryFuture},
	{"What does your ideal day look like?", models.CategoryFuture},
	{"What legacy do you want to leave?", models.CategoryFuture},
	{"What's on your bucket list?", models.CategoryFuture},
	{"What dream have you been postponing?", models.CategoryFuture},
	{"What would you attempt if resources were unlimited?", models.CategoryFuture},
	{"What change do you want to see in the world?", models.CategoryFuture},
	{"What adventure do you want to have?", models.CategoryFuture},
	{"What kind of person do you want to become?", models.CategoryFuture},
	{"What's the next big milestone you're working toward?", models.CategoryFuture},
	{"What would make next month better than this one?", models.CategoryFuture},
	{"What new experience do you want to try?", models.CategoryFuture},

	// Relationships
	{"Who inspired you recently?", models.CategoryRelationships},
	{"Who do you need to reconnect with?", models.CategoryRelationships},
	{"What relationship in your life needs more attention?", models.CategoryRelationships},
	{"Who has shaped who you are today?", models.CategoryRelationships},
	{"What quality do you admire most in others?", models.CategoryRelationships},
	{"Who would you like to thank?", models.CategoryRelationships},
	{"What conversation do you need to have?", models.CategoryRelationships},
	{"How did you show love to someone today?", models.CategoryRelationships},
	{"Who makes you feel truly seen and heard?", models.CategoryRelationships},
	{"What have you learned from a difficult relationship?", models.CategoryRelationships},
	{"Who do you turn to in times of trouble?", models.CategoryRelationships},
	{"What kind of friend do you want to be?", models.CategoryRelationships},
	{"Who challenges you to be better?", models.CategoryRelationships},
	{"What's the most meaningful conversation you've had recently?", models.CategoryRelationships},
	{"How can you be more present with the people you love?", models.CategoryRelationships},

	// Creativity
	{"What idea excited you today?", models.CategoryCreativity},
	{"What creative project are you working on?", models.CategoryCreativity},
	{"What would you create if you had no limits?", models.CategoryCreativity},
	{"What inspires your creativity?", models.CategoryCreativity},
	{"What problem would you love to solve?", models.CategoryCreativity},
	{"What's a new way you could approach an old problem?", models.CategoryCreativity},
	{"What art, music, or writing moved you recently?", models.CategoryCreativity},
	{"What's something you'd like to make with your hands?", models.CategoryCreativity},
	{"What hobby would you like to explore?", models.CategoryCreativity},
	{"If you wrote a book, what would it be about?", models.CategoryCreativity},
	{"What would you design if you were an architect?", models.CategoryCreativity},
	{"What story do you want to tell?", models.CategoryCreativity},
	{"What's the most creative thing you did today?", models.CategoryCreativity},
	{"What would you invent to make life better?", models.CategoryCreativity},
	{"How do you express yourself creatively?", models.CategoryCreativity},

	// Challenge
	{"What scared you but you did anyway?", models.CategoryChallenge},
	{"What's the hardest thing you're dealing with right now?", models.CategoryChallenge},
	{"What obstacle are you currently facing?", models.CategoryChallenge},
	{"What fear would you like to overcome?", models.CategoryChallenge},
	{"What's outside your comfort zone that you want to try?", models.CategoryChallenge},
	{"What failure taught you resilience?", models.CategoryChallenge},
	{"What difficult conversation do you need to have?", models.CategoryChallenge},
	{"What risk is worth taking?", models.CategoryChallenge},
	{"What's the bravest thing you've done recently?", models.CategoryChallenge},
	{"What challenge are you avoiding?", models.CategoryChallenge},
	{"What would you do if you weren't afraid?", models.CategoryChallenge},
	{"What setback have you overcome?", models.CategoryChallenge},
	{"What tough decision are you facing?", models.CategoryChallenge},
	{"What's pushing you to grow right now?", models.CategoryChallenge},
	{"How do you handle stress and pressure?", models.CategoryChallenge},
}
