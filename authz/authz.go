// Package authz is the platform's authorization engine. Every decision
// is a pure function of the principal and the already-fetched resource
// fields; callers load entities first and map a returned *Denial to a
// 403 response. Collecting the checks here keeps the role and
// ownership policy in one auditable place instead of scattered through
// route handlers.
package authz

import "skillforge/models"

// Principal is the authenticated caller.
type Principal struct {
	ID   uint
	Role string
}

// Denial reasons. Both map to Forbidden at the transport boundary but
// the message must distinguish a role problem from a missing
// enrollment.
const (
	ReasonWrongRole   = "wrong_role"
	ReasonNotOwner    = "not_owner"
	ReasonNotEnrolled = "not_enrolled"
)

// Denial is the error returned for every DENY decision.
type Denial struct {
	Reason  string
	Message string
}

func (d *Denial) Error() string { return d.Message }

func deny(reason, message string) *Denial {
	return &Denial{Reason: reason, Message: message}
}

// IsAdmin reports whether the principal has the admin role.
func (p Principal) IsAdmin() bool { return p.Role == models.RoleAdmin }

// ManageResource decides whether the principal may create, update or
// delete a resource owned by ownerID (a course, lesson, quiz or job).
// Admins are always allowed; otherwise the principal must be an
// instructor and the owner of the resource.
func ManageResource(p Principal, ownerID uint) error {
	if p.IsAdmin() {
		return nil
	}
	if p.Role != models.RoleInstructor {
		return deny(ReasonWrongRole, "Only instructors or admins can manage this resource.")
	}
	if p.ID != ownerID {
		return deny(ReasonNotOwner, "Not authorized: you do not own this resource.")
	}
	return nil
}

// CreateResource decides whether the principal may create a fresh
// resource that will be owned by them (a course or job posting).
func CreateResource(p Principal) error {
	if p.IsAdmin() || p.Role == models.RoleInstructor {
		return nil
	}
	return deny(ReasonWrongRole, "Only instructors or admins can create this resource.")
}

// ManageStorybook decides storybook create/delete. There is no
// instructor path for storybooks; admin only.
func ManageStorybook(p Principal) error {
	if p.IsAdmin() {
		return nil
	}
	return deny(ReasonWrongRole, "Only admins can manage storybooks.")
}

// ViewContent decides whether the principal may view lesson or quiz
// content (not metadata). Allowed for the owning instructor, an admin,
// or a student enrolled in the owning course.
func ViewContent(p Principal, ownerID uint, enrolled bool) error {
	if p.IsAdmin() || p.ID == ownerID {
		return nil
	}
	if p.Role == models.RoleStudent && enrolled {
		return nil
	}
	return deny(ReasonNotEnrolled, "Not authorized to view this content. Please enroll in the course.")
}

// SubmitQuiz decides quiz submission: students only, and only when
// enrolled in the quiz's course.
func SubmitQuiz(p Principal, enrolled bool) error {
	if p.Role != models.RoleStudent {
		return deny(ReasonWrongRole, "Only students can submit quizzes.")
	}
	if !enrolled {
		return deny(ReasonNotEnrolled, "You must be enrolled in this course to submit this quiz.")
	}
	return nil
}

// EnrollSelf decides enrollment create/delete. Enrollment is strictly
// self-service: only a student acting on their own id is allowed, and
// unlike every other mutation there is no admin override.
func EnrollSelf(p Principal, targetUserID uint) error {
	if p.Role != models.RoleStudent {
		return deny(ReasonWrongRole, "Only students can manage course enrollment.")
	}
	if p.ID != targetUserID {
		return deny(ReasonNotOwner, "Not authorized to manage enrollment for another user.")
	}
	return nil
}

// CheckEnrollment decides whether the principal may read another
// user's enrollment status: themselves, or an admin.
func CheckEnrollment(p Principal, targetUserID uint) error {
	if p.IsAdmin() || p.ID == targetUserID {
		return nil
	}
	return deny(ReasonNotOwner, "Not authorized to check enrollment for this user.")
}

// ViewCourseProgress decides course progress reads: the course's
// instructor, an admin, or an enrolled student.
func ViewCourseProgress(p Principal, courseInstructorID uint, enrolled bool) error {
	if p.IsAdmin() || p.ID == courseInstructorID {
		return nil
	}
	if p.Role == models.RoleStudent && enrolled {
		return nil
	}
	return deny(ReasonNotEnrolled, "Not authorized to view progress for this course.")
}
