package repository

import (
	"time"

	"github.com/noah-isme/pips-site-api/internal/models"
)

// DefaultContactInfo is served until an administrator saves the contact page.
func DefaultContactInfo() models.ContactInfo {
	return models.ContactInfo{
		Email: "pinetownindependentprimary@gmail.com",
		Phone: "0748479786",
		Address: models.Address{
			Street:  "37 Hill Street",
			City:    "Pinetown",
			Postal:  "3610",
			Country: "South Africa",
		},
		OfficeHours: []models.OfficeHours{
			{Day: "Mon-Fri", Time: "7:30 AM - 3:30 PM"},
			{Day: "Saturday", Time: "Closed"},
			{Day: "Sunday", Time: "Closed"},
		},
		SchoolHours: []models.SchoolHours{
			{Label: "Classes", Time: "8:00 AM - 2:30 PM"},
			{Label: "After Care", Time: "2:30 PM - 5:00 PM"},
			{Label: "Drop-off", Time: "7:00 AM - 8:00 AM"},
		},
	}
}

var defaultGallery = []struct{ src, alt string }{
	{"_images/events 1.jpg", "School Event 1"},
	{"_images/events 2.jpg", "School Event 2"},
	{"_images/events 3.jpg", "School Event 3"},
	{"_images/events 4.jpg", "School Event 4"},
	{"_images/events 5.jpg", "School Event 5"},
	{"_images/events 6.jpg", "School Event 6"},
	{"_images/events 7.jpg", "School Event 7"},
	{"_images/events 8.jpg", "School Event 8"},
	{"_images/events 9.jpg", "School Event 9"},
	{"_images/events 10.jpg", "School Event 10"},
	{"_images/teaches_photo 1.jpg", "Teachers Photo"},
	{"_images/awards 1.jpg", "Awards Ceremony"},
	{"_images/awards 2.jpg", "Awards Ceremony"},
	{"_images/awards 3.jpg", "Awards Ceremony"},
	{"_images/photo_day.jpg", "Photo Day Activities"},
	{"_images/classroom 1.jpg", "Classroom Environment"},
	{"_images/classroom 2.jpg", "Classroom Learning"},
}

// defaultGalleryUploaded stamps the built-in images so unwritten reads stay stable.
var defaultGalleryUploaded = time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

// DefaultGallery returns the built-in gallery.
func DefaultGallery() []models.GalleryImage {
	images := make([]models.GalleryImage, len(defaultGallery))
	stamp := uploadStamp(defaultGalleryUploaded)
	for i, img := range defaultGallery {
		images[i] = models.GalleryImage{ID: int64(i + 1), Src: img.src, Alt: img.alt, UploadDate: stamp}
	}
	return images
}

func noticeItems(texts ...string) []models.NoticeItem {
	items := make([]models.NoticeItem, len(texts))
	for i, text := range texts {
		items[i] = models.NoticeItem{ID: int64(i + 1), Text: text}
	}
	return items
}

// DefaultNoticeBoard returns the built-in notice board.
func DefaultNoticeBoard() models.NoticeBoard {
	return models.NoticeBoard{
		Events: noticeItems(
			"Parent-Teacher Conference - March 15, 2025",
			"School Sports Day - March 22, 2025",
			"Grade 7 Graduation Ceremony - December 5, 2025",
			"School Open Day - April 10, 2025",
		),
		News: noticeItems(
			"New library books have arrived and are available for borrowing",
			"School garden project wins district environmental award",
			"Grade 6 students participate in mathematics olympiad",
			"School choir performs at community festival",
		),
		Reminders: noticeItems(
			"School fees for Term 2 are due by March 31, 2025",
			"Please ensure students wear proper school uniform daily",
			"Parent permission slips for field trips must be submitted by Friday",
			"After-school activities resume next Monday",
		),
	}
}

// DefaultUniformShop returns the built-in price list.
func DefaultUniformShop() models.UniformShop {
	return models.UniformShop{
		Boys: models.UniformSet{
			Summer: []models.UniformItem{
				{ID: 1, Name: "Navy blue shorts", Price: 150},
				{ID: 2, Name: "White short-sleeve shirt", Price: 120},
				{ID: 3, Name: "Navy blue knee-high socks", Price: 45},
				{ID: 4, Name: "Black school shoes", Price: 280},
				{ID: 5, Name: "Navy blue school hat", Price: 85},
			},
			Winter: []models.UniformItem{
				{ID: 6, Name: "Navy blue long pants", Price: 180},
				{ID: 7, Name: "White long-sleeve shirt", Price: 140},
				{ID: 8, Name: "Navy blue pullover", Price: 220},
				{ID: 9, Name: "Navy blue blazer", Price: 350},
				{ID: 10, Name: "School tie", Price: 65},
			},
			Sports: []models.UniformItem{
				{ID: 11, Name: "Navy blue sports shorts", Price: 130},
				{ID: 12, Name: "White sports t-shirt", Price: 110},
				{ID: 13, Name: "White sports socks", Price: 40},
				{ID: 14, Name: "Sports tracksuit", Price: 380},
			},
		},
		Girls: models.UniformSet{
			Summer: []models.UniformItem{
				{ID: 15, Name: "Navy blue tunic dress", Price: 180},
				{ID: 16, Name: "White short-sleeve blouse", Price: 125},
				{ID: 17, Name: "White knee-high socks", Price: 45},
				{ID: 18, Name: "Black school shoes", Price: 280},
				{ID: 19, Name: "Navy blue school hat", Price: 85},
			},
			Winter: []models.UniformItem{
				{ID: 20, Name: "Navy blue winter skirt", Price: 160},
				{ID: 21, Name: "White long-sleeve blouse", Price: 145},
				{ID: 22, Name: "Navy blue cardigan", Price: 240},
				{ID: 23, Name: "Navy blue blazer", Price: 350},
				{ID: 24, Name: "School tie", Price: 65},
			},
			Sports: []models.UniformItem{
				{ID: 25, Name: "Navy blue sports skort", Price: 140},
				{ID: 26, Name: "White sports t-shirt", Price: 110},
				{ID: 27, Name: "White sports socks", Price: 40},
				{ID: 28, Name: "Sports tracksuit", Price: 380},
			},
		},
	}
}

func comment(author, text, date string) models.Comment {
	return models.Comment{Author: author, Text: text, Date: date}
}

// DefaultPosts returns the launch feed.
func DefaultPosts() []models.Post {
	posts := []models.Post{
		{
			ID: 1, Type: models.PostNews, Title: "New Library Books Arrive",
			Content: "We are excited to announce that 150 new books have arrived at our school library. The collection includes adventure stories, educational materials, and interactive learning books suitable for all grade levels. Students can now enjoy reading the latest bestsellers and explore new subjects through our expanded collection.",
			Author:  "Mrs. Smith", Date: "2025-10-25", Category: "Library", Featured: true, Likes: 15, Views: 234,
			Comments: []models.Comment{comment("Parent Jones", "Great addition to the library!", "2025-10-26")},
		},
		{
			ID: 2, Type: models.PostEvent, Title: "Annual Sports Day 2025",
			Content: "Join us for our annual Sports Day on November 15th! Students will participate in various athletic events including relay races, long jump, high jump, and team sports. Parents and families are welcome to attend and cheer for their children. The event starts at 9:00 AM and will include a prize-giving ceremony.",
			Author:  "Mr. Johnson", Date: "2025-10-20", Category: "Sports", Featured: true, Likes: 28, Views: 456,
			Comments: []models.Comment{
				comment("Parent Williams", "Looking forward to this event!", "2025-10-21"),
				comment("Teacher Brown", "The children are very excited!", "2025-10-22"),
			},
		},
		{
			ID: 3, Type: models.PostAnnouncement, Title: "School Uniform Reminder",
			Content: "Please ensure that all students are wearing the correct school uniform daily. This includes proper shoes, navy blue socks, and school badge. Complete uniforms can be purchased from our uniform shop during school hours. Contact the office for assistance.",
			Author:  "Principal Davis", Date: "2025-10-18", Category: "General", Likes: 8, Views: 189,
		},
		{
			ID: 4, Type: models.PostAchievement, Title: "Mathematics Olympiad Success",
			Content: "Congratulations to our Grade 6 students who participated in the regional Mathematics Olympiad! Three of our students placed in the top 10, bringing pride to our school. Special recognition goes to Sarah Johnson (2nd place), Michael Chen (7th place), and Emma Wilson (9th place).",
			Author:  "Mrs. Brown", Date: "2025-10-15", Category: "Academic", Featured: true, Likes: 42, Views: 678,
			Comments: []models.Comment{
				comment("Teacher Green", "So proud of our students!", "2025-10-16"),
				comment("Parent Davis", "Amazing achievement!", "2025-10-17"),
			},
		},
		{
			ID: 5, Type: models.PostEvent, Title: "Parent-Teacher Conference",
			Content: "Our quarterly parent-teacher conferences are scheduled for November 2-3. Please contact the school office to book your appointment. This is a great opportunity to discuss your child's progress and academic development.",
			Author:  "School Office", Date: "2025-10-12", Category: "Parent", Likes: 12, Views: 298,
		},
		{
			ID: 6, Type: models.PostNews, Title: "Environmental School Garden Project",
			Content: "Our environmental committee has launched a new school garden project. Students from all grades will participate in planting vegetables and flowers. This hands-on learning experience promotes environmental awareness and teaches sustainable practices.",
			Author:  "Ms. Green", Date: "2025-10-10", Category: "Environment", Likes: 19, Views: 345,
			Comments: []models.Comment{comment("Grade 4 Student", "Can't wait to plant flowers!", "2025-10-11")},
		},
	}
	for i := range posts {
		if posts[i].Comments == nil {
			posts[i].Comments = []models.Comment{}
		}
	}
	return posts
}
