package store

// CouponDiscount returns the discount percentage for a code.
func (s *Store) CouponDiscount(code string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	discount, ok := s.coupons[code]
	if !ok {
		return 0, ErrNotFound
	}
	return discount, nil
}

// Checkout switches the user to the purchased plan. Payment itself is
// mocked; the price is accepted as already coupon-adjusted by the client.
func (s *Store) Checkout(userID, plan string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	u.Plan = plan
	return *u, nil
}

// Rewards lists the redeemable referral rewards.
func (s *Store) Rewards() []Reward {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Reward, 0, len(s.rewards))
	for _, r := range s.rewards {
		out = append(out, *r)
	}
	return out
}

// RedeemReward spends the user's referral points on a reward and returns
// the updated user.
func (s *Store) RedeemReward(userID, rewardID string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return User{}, ErrNotFound
	}

	var reward *Reward
	for _, r := range s.rewards {
		if r.ID == rewardID {
			reward = r
			break
		}
	}
	if reward == nil {
		return User{}, ErrNotFound
	}
	if u.ReferralPoints < reward.Points {
		return User{}, ErrInsufficientPoints
	}

	u.ReferralPoints -= reward.Points
	return *u, nil
}
