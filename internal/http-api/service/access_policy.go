package service

// AccessPolicy decides, per operation, whether the acting identity may
// proceed. It is a pure decision component: no storage access, callers
// supply whatever state the decision needs and perform the actual
// read/write themselves.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanCreateRoom allows the subject's owner and any trusted service. Subject
// existence is the caller's concern (the registry lookup happens first).
func (AccessPolicy) CanCreateRoom(owner int64, ident Identity) error {
	if ident.Service {
		return nil
	}
	if ident.UserID == owner {
		return nil
	}
	return ErrForbidden
}

// ResolvePoster returns the user a message is recorded under. A trusted
// service posts on behalf of any user, verbatim, without membership checks.
// A regular user only posts as themselves; the sender whitelist does not
// gate posting, it gates whitelist mutation.
func (AccessPolicy) ResolvePoster(ident Identity, onBehalfOf *int64) (int64, error) {
	if ident.Service {
		if onBehalfOf == nil {
			return 0, ErrUserRequired
		}
		return *onBehalfOf, nil
	}
	if onBehalfOf != nil && *onBehalfOf != ident.UserID {
		return 0, ErrForbidden
	}
	return ident.UserID, nil
}

// CanManageSenders restricts whitelist mutation to the trusted-service
// path. There is no self-service sender management.
func (AccessPolicy) CanManageSenders(ident Identity) error {
	if ident.Service {
		return nil
	}
	return ErrForbidden
}
