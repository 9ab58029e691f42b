package extract

import "testing"

func TestExtractRecurrence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Recurrence
	}{
		{
			name: "every week",
			text: "Send report every week",
			want: Recurrence{IsRecurring: true, Frequency: FrequencyWeekly},
		},
		{
			name: "daily standup",
			text: "Post the standup summary daily",
			want: Recurrence{IsRecurring: true, Frequency: FrequencyDaily},
		},
		{
			name: "biweekly does not classify as weekly",
			text: "Biweekly sync with the design team",
			want: Recurrence{IsRecurring: true, Frequency: FrequencyBiweekly},
		},
		{
			name: "every other week",
			text: "Rotate the on-call schedule every other week",
			want: Recurrence{IsRecurring: true, Frequency: FrequencyBiweekly},
		},
		{
			name: "monthly",
			text: "Invoice the client monthly",
			want: Recurrence{IsRecurring: true, Frequency: FrequencyMonthly},
		},
		{
			name: "recurring without a period",
			text: "Make this a recurring task",
			want: Recurrence{IsRecurring: true},
		},
		{
			name: "not recurring",
			text: "Send report once",
			want: Recurrence{},
		},
		{
			name: "empty input",
			text: "",
			want: Recurrence{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRecurrence(tt.text)
			if got != tt.want {
				t.Errorf("ExtractRecurrence(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
