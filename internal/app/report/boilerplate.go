package report

import "strings"

// Static sections appended to every document; independent of the
// extracted data.

const guidelines = `
## 6. Implementation Guidelines

### 6.1 Navigation Implementation

` + "```kotlin" + `
// Example navigation implementation
navController.navigate("destination_route") {
    popUpTo("source_route") { inclusive = false }
    launchSingleTop = true
}
` + "```" + `

### 6.2 Data Passing Implementation

` + "```kotlin" + `
// Example data passing
navController.navigate("destination/{param}".replace("{param}", value))
` + "```" + `
`

const checklists = `
## 7. Validation Checklist

### Pre-Implementation Validation

- [ ] All screens have clear navigation paths
- [ ] No orphaned screens (screens without incoming navigation)
- [ ] No dead-end screens (screens without outgoing navigation)
- [ ] Data flow is consistent across all navigation paths
- [ ] Back navigation is properly handled
- [ ] Deep linking scenarios are considered

### Post-Implementation Validation

- [ ] All navigation flows work as expected
- [ ] Data is properly passed between screens
- [ ] Navigation stack is managed correctly
- [ ] No memory leaks in navigation
- [ ] User can complete all primary user journeys
`

func writeGuidelines(b *strings.Builder) {
	b.WriteString(guidelines)
}

func writeChecklists(b *strings.Builder) {
	b.WriteString(checklists)
}
