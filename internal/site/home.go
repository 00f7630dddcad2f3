package site

import (
	"html/template"
	"strings"
	"time"
)

const (
	homeTitle       = "I Love Word Search | Free Printable & Online Word Search Puzzles for All Ages"
	homeDescription = "Play free online word search puzzles or print PDF sheets for kids and adults. Browse thousands of themed puzzles: animals, holidays, food, geography, history, vocabulary, large-print, classroom worksheets, and more."
	themeColor      = "#fef3c7"
)

var homeKeywords = []string{
	"free word search puzzles",
	"online word search",
	"printable word search",
	"easy word search for kids",
	"large print word search",
	"holiday word search",
	"classroom worksheets",
	"pdf word search generator",
	"word search for adults",
	"themed word search games",
}

// Category is a featured puzzle topic
type Category struct {
	Name        string
	Description string
}

// Section is a titled block of copy. Paragraphs are trusted markup.
type Section struct {
	Title      string
	Paragraphs []template.HTML
	Bullets    []string
}

// Question is a frequently asked question and its answer
type Question struct {
	Question string
	Answer   string
}

// HomeData is the template data of the home page
type HomeData struct {
	Featured    []Category
	Sections    []Section
	FAQ         []Question
	LastUpdated time.Time
	Year        int
}

func homePage(url string) Page {
	return Page{
		Path:     "/",
		Template: "home.html",
		Head:     homeHead(url),
		Load: func(now time.Time) interface{} {
			return HomeData{
				Featured:    featured,
				Sections:    sections,
				FAQ:         faq,
				LastUpdated: now,
				Year:        now.Year(),
			}
		},
	}
}

func homeHead(url string) []HeadEntry {
	return []HeadEntry{
		Title(homeTitle),
		Meta("description", homeDescription),
		Meta("keywords", strings.Join(homeKeywords, ", ")),
		Meta("robots", "index,follow,max-image-preview:large"),
		Property("og:title", homeTitle),
		Property("og:description", homeDescription),
		Property("og:type", "website"),
		Property("og:url", url),
		Property("og:image", url+"og-image.jpg"),
		Meta("twitter:card", "summary_large_image"),
		Meta("twitter:title", homeTitle),
		Meta("twitter:description", homeDescription),
		Link("canonical", url),
		Meta("theme-color", themeColor),
	}
}

var featured = []Category{
	{Name: "Animals", Description: "Dogs, cats, jungle animals, ocean life"},
	{Name: "Holidays", Description: "Christmas, Halloween, Easter, Valentine’s Day"},
	{Name: "Countries & Geography", Description: "World capitals, landmarks, flags"},
	{Name: "Food & Drinks", Description: "Fruits, desserts, breakfast, global cuisines"},
	{Name: "Sports & Fitness", Description: "Soccer, basketball, Olympic events"},
	{Name: "STEM & School", Description: "Science terms, math vocab, spelling words"},
	{Name: "Pop Culture", Description: "Movies, music hits, famous characters"},
	{Name: "Large-Print", Description: "Bigger grids for seniors & low-vision players"},
}

var sections = []Section{
	{
		Title: "Why Word Search Puzzles Are Great for Everyone",
		Paragraphs: []template.HTML{
			"Word search puzzles boost memory, improve spelling, and sharpen focus for children, teens, adults, and seniors. They’re perfect for quick mental workouts at home, in classrooms, or while commuting. Teachers use themed word searches to reinforce vocabulary in science, history, geography, and language arts. Seniors love large-print puzzles for gentle brain exercise that also reduces stress.",
			"On <strong>I Love Word Search</strong>, you can solve puzzles online or print PDF worksheets for free. Each puzzle is mobile-friendly, auto-generates a random letter grid, and highlights words as you find them.",
		},
	},
	{
		Title: "Free Printable PDF Puzzles for Classrooms & Parties",
		Paragraphs: []template.HTML{
			"Download hundreds of free printable word search sheets in PDF format. Our printables are designed for easy classroom distribution, home-school lessons, or themed party games. Choose from seasonal packs (Christmas, Halloween, Thanksgiving), STEM vocabulary sets, or fun categories like pets, desserts, and sports.",
		},
	},
	{
		Title: "Online Word Search Generator – Coming Soon",
		Paragraphs: []template.HTML{
			"Soon you’ll be able to create custom word search puzzles instantly: enter your own word list, select grid size (10×10, 15×15, etc.), difficulty level, and generate a shareable or printable puzzle in seconds. This feature will be perfect for teachers, party planners, and puzzle enthusiasts.",
		},
	},
	{
		Title: "Brain-Training Benefits of Word Search",
		Paragraphs: []template.HTML{
			"Regularly playing word search helps with pattern recognition, memory retention, and problem-solving skills. Studies show word puzzles can delay cognitive decline in seniors and improve language acquisition for ESL learners. They’re a relaxing way to unwind while keeping your brain active.",
		},
	},
	{
		Title: "Tips for Parents & Teachers",
		Bullets: []string{
			"Use easy 8×8 grids for early-readers and larger 20×20 grids for teens.",
			"Pick themed puzzles that align with school lessons to boost vocabulary retention.",
			"Offer printable answer keys for quick grading in classrooms.",
			"For parties, try timed competitions to add excitement and teamwork.",
		},
	},
	{
		Title: "Large-Print & Accessible Puzzles",
		Paragraphs: []template.HTML{
			"We offer high-contrast, large-print word search puzzles specifically for seniors and low-vision users. These puzzles use bold fonts and simplified grids to ensure everyone can enjoy them comfortably.",
		},
	},
	{
		Title: "Seasonal & Holiday Word Search Collections",
		Paragraphs: []template.HTML{
			"Celebrate the seasons with themed puzzles that keep kids and adults engaged all year. Our curated holiday packs make learning festive and fun.",
		},
		Bullets: []string{
			"Winter holidays: Christmas, Hanukkah, New Year’s Eve",
			"Spring events: Valentine’s Day, St. Patrick’s Day, Easter",
			"Summer fun: Fourth of July, beach & vacation words",
			"Autumn favorites: Back-to-School, Halloween, Thanksgiving",
		},
	},
	{
		Title: "Classroom-Ready Printable Worksheets",
		Paragraphs: []template.HTML{
			"Teachers love our pre-made PDF word search sheets with answer keys. Perfect for morning warm-ups, homework, sub-plans, and spelling review.",
		},
		Bullets: []string{
			"Aligned with STEM and language-arts vocabulary",
			"Available in 8×8, 12×12, 15×15, and 20×20 grids",
			"Printable in black-and-white or color-friendly versions",
			"Free for personal, homeschool, and public-school use",
		},
	},
	{
		Title: "Daily Brain-Training Challenge",
		Paragraphs: []template.HTML{
			"Join our upcoming <strong>Daily Word Search Challenge</strong> to keep your brain sharp. New themed puzzles appear every morning to test your speed and focus.",
			"Track your streak, aim for personal best times, and compete with friends in future leaderboards. A fun routine to improve attention span and vocabulary one puzzle at a time.",
		},
	},
	{
		Title: "Tips for Solving Puzzles Faster",
		Paragraphs: []template.HTML{
			"Word search fans often ask for strategies to improve their solving speed. Our quick tips help players of all skill levels:",
		},
		Bullets: []string{
			"Scan rows and columns for uncommon letters first (like Q or Z)",
			"Highlight prefixes or suffixes to spot longer words quickly",
			"Circle found words to avoid double-checking the same area",
			"Use a finger or stylus on tablets to reduce eye-strain",
		},
	},
	{
		Title: "History & Fun Facts About Word Search",
		Paragraphs: []template.HTML{
			"Did you know the first known word search puzzle appeared in the U.S. in 1968 under the title “Word-Cross”? Since then, word searches have become a global pastime enjoyed by millions. They’re now available in dozens of languages, from English and Spanish to Japanese kana-based grids.",
			"Our site celebrates this heritage while adding modern online features and printable convenience for today’s players.",
		},
	},
	{
		Title: "Themed Puzzle Packs for All Ages",
		Paragraphs: []template.HTML{
			"Whether you’re planning a rainy-day activity for kids or a relaxing challenge for adults, our themed puzzle packs keep things fresh.",
		},
		Bullets: []string{
			"Early-reader packs with 3–6 letter words",
			"Adult-focused packs with advanced vocabulary & trivia",
			"Family game-night packs that mix easy and tough grids",
			"Travel-themed packs for road trips, airports, and campouts",
		},
	},
	{
		Title: "Teacher Tools & Curriculum Integration",
		Paragraphs: []template.HTML{
			"Our free printable word searches are perfect for reinforcing spelling lists, historical figures, or science topics. Teachers can easily plug them into weekly lesson plans.",
		},
		Bullets: []string{
			"Spelling-bee word lists converted to puzzles",
			"Geography grids with countries, capitals, landmarks",
			"Science-based sets for biology, astronomy, chemistry terms",
			"Ready-made answer keys to save grading time",
		},
	},
	{
		Title: "Multi-Language Word Search Collections",
		Paragraphs: []template.HTML{
			"Word search isn’t just for English speakers. We’re expanding to support <strong>Spanish, French, German, and Italian</strong> puzzles - plus ESL vocabulary packs for learners worldwide.",
			"These multi-language puzzles help students grow their vocabulary and make language lessons interactive.",
		},
	},
	{
		Title: "Printable Answer Keys & Solutions",
		Paragraphs: []template.HTML{
			"Every printable puzzle includes a clear, easy-to-read answer key so teachers, parents, and players can check solutions quickly. Our online puzzles also allow instant reveal of hidden words for accessibility.",
		},
	},
	{
		Title: "Upcoming Features & Roadmap",
		Paragraphs: []template.HTML{
			"We’re always working to improve I Love Word Search. Here’s what’s on the way:",
		},
		Bullets: []string{
			"Custom puzzle generator with word-list import",
			"Daily challenge leaderboard and streak tracking",
			"Interactive multiplayer timed puzzle rooms",
			"Printable PDF bundles organized by theme and grade level",
		},
	},
	{
		Title: "Printable Holiday Party Games",
		Paragraphs: []template.HTML{
			"Our holiday-themed word searches double as icebreakers at parties, classrooms, and family gatherings. Simply print the PDFs, set a timer, and let players race to find all the words.",
		},
		Bullets: []string{
			"Halloween mystery-themed grids with spooky words",
			"Valentine’s Day romantic phrases for couples’ game night",
			"Christmas trivia puzzles for office parties",
			"New Year countdown challenges to kick-off festivities",
		},
	},
	{
		Title: "Cross-Generational Fun at Home",
		Paragraphs: []template.HTML{
			"Word search is one of the few puzzle styles that grandparents and kids can enjoy together at the same table. Large-print grids and playful themes make it accessible and fun for the entire household.",
			"Encourage screen-free family evenings by keeping a stack of printable sheets handy for rainy days or quiet weekends.",
		},
	},
	{
		Title: "STEM-Inspired Word Search for Young Learners",
		Paragraphs: []template.HTML{
			"Spark curiosity about science, technology, engineering, and math with puzzles that highlight STEM vocabulary. Teachers love using these themed sets as warm-ups or homework reinforcement.",
		},
		Bullets: []string{
			"Biology & anatomy terms for middle-school science",
			"Astronomy word lists covering planets, stars, galaxies",
			"Math vocabulary puzzles with shapes, fractions, formulas",
			"Engineering-related words for project-based learning",
		},
	},
	{
		Title: "Travel-Themed Word Search Adventures",
		Paragraphs: []template.HTML{
			"Plan your next vacation or teach geography through puzzles inspired by world landmarks, capital cities, cuisines, and cultural festivals.",
		},
		Bullets: []string{
			"World-capitals challenge for advanced solvers",
			"Beach-holiday themed word lists for summer trips",
			"Famous landmarks and UNESCO heritage sites",
			"National foods & cultural festivals word sets",
		},
	},
	{
		Title: "Printable Puzzle Packs for Road Trips",
		Paragraphs: []template.HTML{
			"Keep kids entertained on long drives with travel-friendly word search bundles. Our compact PDFs save ink and paper while providing hours of quiet back-seat fun.",
			"Combine them with coloring pages and crossword sheets for the perfect all-in-one travel activity pack.",
		},
	},
	{
		Title: "Eco-Friendly Printing Tips",
		Paragraphs: []template.HTML{
			"Printing at home? Save resources while still enjoying free puzzles:",
		},
		Bullets: []string{
			"Use duplex (double-sided) printing to reduce paper",
			"Choose draft or grayscale mode for ink-saving prints",
			"Bundle several smaller grids per sheet when possible",
			"Recycle used sheets or repurpose as kids’ scrap paper",
		},
	},
}

var faq = []Question{
	{
		Question: "Are these word search puzzles free to play and print?",
		Answer:   "Yes, all puzzles on I Love Word Search are 100% free for personal, classroom, and educational use.",
	},
	{
		Question: "Can I use them on a phone or tablet?",
		Answer:   "Absolutely. The online solver is mobile-friendly and works on all modern browsers. PDFs print clearly from any device.",
	},
	{
		Question: "Do you add new puzzles regularly?",
		Answer:   "We add fresh themed puzzles every week to keep things fun and engaging.",
	},
	{
		Question: "Will there be a custom puzzle generator?",
		Answer:   "Yes. Our upcoming generator lets you create custom puzzles with your own word lists for parties, classrooms, or printable gifts.",
	},
}
