package services

import "VisionCare360/models"

// The fixed sample sets behind each admin screen's Load Defaults button.
// Returned fresh on every call so callers can stamp ids and timestamps
// without sharing state.

func DefaultDoctors() []models.Doctor {
	return []models.Doctor{
		{
			Name:           "Dr. Ananya Sharma",
			Qualification:  "MBBS, MS (Ophthalmology)",
			Specialization: "Cataract & LASIK",
			Experience:     "15+ Years",
			Description:    "Expert in cataract surgery and refractive procedures with a focus on patient comfort and precise outcomes.",
			Image:          "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?q=80&w=2070&auto=format&fit=crop",
			Role:           models.RoleDirector,
		},
		{
			Name:           "Dr. Suresh Verma",
			Qualification:  "MBBS, MD (Ophthalmology)",
			Specialization: "Cornea Specialist",
			Experience:     "20+ Years",
			Description:    "Renowned specialist in corneal transplants and anterior segment surgeries.",
			Image:          "https://images.unsplash.com/photo-1537368910025-700350fe46c7?q=80&w=2070&auto=format&fit=crop",
			Role:           models.RoleDirector,
		},
		{
			Name:           "Dr. Rajesh Patel",
			Qualification:  "MBBS, DNB",
			Specialization: "Retina Specialist",
			Experience:     "12+ Years",
			Description:    "Specializes in diabetic retinopathy, macular degeneration, and complex retinal surgeries.",
			Image:          "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?q=80&w=2070&auto=format&fit=crop",
			Role:           models.RoleDoctor,
		},
		{
			Name:           "Dr. Priya Mehta",
			Qualification:  "MBBS, DO",
			Specialization: "Pediatric Ophthalmology",
			Experience:     "10+ Years",
			Description:    "Dedicated to treating eye problems in children, including squint and amblyopia.",
			Image:          "https://images.unsplash.com/photo-1594824476967-48c8b964273f?q=80&w=2070&auto=format&fit=crop",
			Role:           models.RoleDoctor,
		},
	}
}

func DefaultServices() []models.Service {
	return []models.Service{
		{Title: "Comprehensive Eye Examination", Description: "Complete vision and eye health evaluation using advanced diagnostic equipment.", Icon: "Eye"},
		{Title: "Cataract Surgery", Description: "Advanced, painless cataract treatment with quick recovery using latest techniques.", Icon: "Sparkles"},
		{Title: "LASIK Surgery", Description: "Freedom from glasses with safe laser vision correction procedures.", Icon: "Zap"},
		{Title: "Retina Care", Description: "Treatment for diabetic retinopathy and other retinal disorders.", Icon: "Target"},
		{Title: "Pediatric Eye Care", Description: "Specialized eye care services designed for children of all ages.", Icon: "Baby"},
		{Title: "Glaucoma Treatment", Description: "Early detection and long-term management of glaucoma.", Icon: "Shield"},
	}
}

func DefaultFeatures() []models.Feature {
	return []models.Feature{
		{Title: "Experienced Eye Specialists", Description: "Our team of board-certified ophthalmologists brings decades of combined experience.", Icon: "UserCheck"},
		{Title: "Advanced Diagnostic Technology", Description: "State-of-the-art equipment for accurate diagnosis and treatment planning.", Icon: "Microscope"},
		{Title: "Patient-Centered Care", Description: "We prioritize your comfort and well-being at every step of your journey.", Icon: "Heart"},
		{Title: "Affordable Treatment Plans", Description: "Quality eye care accessible to all with flexible payment options.", Icon: "BadgeCheck"},
		{Title: "Trusted by Thousands", Description: "Join our community of satisfied patients who've regained their clear vision.", Icon: "Users"},
	}
}

func DefaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{Name: "Rahul Kumar", Role: "Cataract Patient", Content: "The surgery was painless and the staff took care of everything. I can see clearly again after years.", Rating: 5},
		{Name: "Sunita Devi", Role: "LASIK Patient", Content: "Life without glasses feels wonderful. The doctors explained every step before the procedure.", Rating: 5},
		{Name: "Amit Patel", Role: "Regular Patient", Content: "Professional team and modern equipment. My whole family gets their eyes checked here.", Rating: 4},
	}
}

func DefaultHomeVideo() models.HomeVideo {
	return models.HomeVideo{
		VideoUrl:    "https://www.youtube.com/watch?v=LXb3EKWsInQ",
		Title:       "Experience Advanced Eye Care",
		Description: "Discover our state-of-the-art facilities and expert team dedicated to your vision.",
	}
}

func DefaultWhyChooseUs() models.WhyChooseUs {
	return models.WhyChooseUs{
		Title:       "Why Choose VisionCare360?",
		Description: "We're committed to providing exceptional eye care with a personal touch",
	}
}
